package usecase

import "io"

// UploadFile is a file received from the client. Content is read once.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
