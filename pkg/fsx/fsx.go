package fsx

import (
	"context"
	"io"
	"path"
)

// FileSystem abstracts blob storage for uploaded files
type FileSystem interface {
	// WriteFile stores the given bytes at filePath
	WriteFile(ctx context.Context, filePath string, data []byte) error

	// WriteFileStream stores the contents of r at filePath
	WriteFileStream(ctx context.Context, filePath string, r io.Reader) error

	// ReadFile retrieves the contents stored at filePath
	ReadFile(ctx context.Context, filePath string) ([]byte, error)

	// DeleteFile removes the file at filePath
	DeleteFile(ctx context.Context, filePath string) error

	// Join builds a storage path from elements
	Join(elem ...string) string
}

// Join is the default path joiner shared by implementations
func Join(elem ...string) string {
	return path.Join(elem...)
}
