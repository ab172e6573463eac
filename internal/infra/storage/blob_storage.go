// Package storage keeps uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"sellerhub/config"
	"sellerhub/internal/domain/lifecycle"
	"sellerhub/internal/domain/service"
	"sellerhub/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultContentType = "application/octet-stream"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStorage implements service.FileStorage. The reference of a stored file is its bucket key.
type blobStorage struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.FileStorage, error) {
	url := params.Config.Storage.BucketURL

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("File storage ready", slog.String("bucket", redactURL(url)))

	return NewWithBucket(bucket), nil
}

// NewWithBucket wraps an already opened bucket.
func NewWithBucket(bucket *blob.Bucket) service.FileStorage {
	return &blobStorage{bucket: bucket}
}

// Save streams content to key and returns the reference to store.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", errors.New("storage key must not be empty")
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, content); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return key, nil
}

// Open returns a reader for a stored reference and its content type.
func (s *blobStorage) Open(ctx context.Context, ref string) (io.ReadCloser, string, error) {
	ref = strings.TrimPrefix(ref, "/")
	if ref == "" || strings.Contains(ref, "..") {
		return nil, "", service.ErrFileNotFound
	}

	r, err := s.bucket.NewReader(ctx, ref, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrFileNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", ref)
	}

	return r, r.ContentType(), nil
}

// redactURL drops the query string, which may carry credentials.
func redactURL(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}

	return url
}
