package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore writes uploaded images under a configured directory, naming
// each file with a fresh uuid so client-supplied names never touch the
// filesystem.
type ImageStore struct {
	dir string
}

// NewImageStore ensures the directory exists and returns the store.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save streams the upload to disk and returns the stored path.
func (s *ImageStore) Save(src io.Reader) (string, error) {
	name := uuid.NewString() + ".jpg"
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write image file: %w", err)
	}
	return path, nil
}
