package service

import (
	"context"
	"errors"
	"io"
)

// ErrFileNotFound is returned when a storage reference does not resolve to a stored file.
var ErrFileNotFound = errors.New("file not found")

// FileStorage stores uploads and hands back an opaque reference to them.
type FileStorage interface {
	// Save writes the content under key and returns the reference to persist.
	Save(ctx context.Context, key string, contentType string, content io.Reader) (string, error)

	// Open streams a previously saved file along with its content type.
	Open(ctx context.Context, ref string) (io.ReadCloser, string, error)
}
