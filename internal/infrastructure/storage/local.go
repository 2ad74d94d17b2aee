// Package storage persists uploaded images on local disk and disposes of
// them off the request path.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore saves uploads under a single directory with generated filenames.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes src to a new file. The stored name is a UUID plus the original
// extension, so client-supplied names never touch the filesystem.
func (s *LocalStore) Save(src io.Reader, filename string) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

func (s *LocalStore) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
