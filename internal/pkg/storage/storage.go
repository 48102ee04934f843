package storage

import (
	"context"
	"io"
)

// FileStorage is the blob-store boundary: store bytes, hand back a retrievable URL.
type FileStorage interface {
	// Upload stores a file and returns the storage path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// PublicURL returns the retrievable URL for a stored path
	PublicURL(path string) string

	// Exists checks if a file exists
	Exists(ctx context.Context, path string) (bool, error)
}
