// ABOUTME: File sink
// ABOUTME: Persists the raw symbol stream for later replay
package sink

import (
	"fmt"
	"os"
)

// File is a file sink. Its content is exactly the bytes written.
type File struct {
	*os.File
}

// CreateFile creates or truncates the file at path
func CreateFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return &File{File: f}, nil
}

// Close syncs the file to disk and closes it
func (f *File) Close() error {
	syncErr := f.File.Sync()
	if err := f.File.Close(); err != nil {
		return err
	}
	return syncErr
}
