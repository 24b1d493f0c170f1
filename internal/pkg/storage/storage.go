package storage

import (
	"context"
	"errors"
	"io"
)

// ErrFileNotFound is returned by Download when no blob exists at the path.
var ErrFileNotFound = errors.New("file not found")

type FileStorage interface {
	// Upload stores a file and returns its cleaned storage path
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
