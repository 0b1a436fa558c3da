package photo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore abstracts where photo bytes live so the service stays testable
type FileStore interface {
	Save(relPath string, r io.Reader) error
	Remove(relPath string) error
}

type diskStore struct{ root string }

// NewDiskStore keeps photo files under root, one directory per profile
func NewDiskStore(root string) FileStore {
	return &diskStore{root: root}
}

func (d *diskStore) Save(relPath string, r io.Reader) error {
	fullPath := filepath.Join(d.root, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create photo directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create photo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("failed to write photo file: %w", err)
	}
	return nil
}

func (d *diskStore) Remove(relPath string) error {
	return os.Remove(filepath.Join(d.root, relPath))
}
