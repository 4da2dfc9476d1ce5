package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded blobs live. Paths are relative keys.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
