package service

import (
	"context"
	"io"
)

// FileStorage writes objects to the bucket and returns their public URL.
type FileStorage interface {
	Upload(ctx context.Context, file io.Reader, objectPath, contentType string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}
