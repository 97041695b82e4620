package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store retains uploaded spreadsheet files on disk. Files are named
// <unix-millis>-<original-name>; two uploads sharing the same millisecond
// and filename collide, which matches the upstream retention scheme.
type Store struct {
	dir string
}

// NewStore builds a disk store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the upload to disk and returns the stored path.
func (s *Store) Save(originalName string, data []byte) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(originalName))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path, nil
}
