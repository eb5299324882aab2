// Package disk implements storage.Store on the local filesystem.
package disk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store writes blobs as plain files under a single directory.
type Store struct {
	dir string
}

// NewStore creates the directory if needed and returns a disk-backed store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Save(ctx context.Context, ref string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(s.path(ref))
	if err != nil {
		return fmt.Errorf("failed to create blob %s: %w", ref, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", ref, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(s.path(ref))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", ref, err)
	}
	return nil
}

func (s *Store) Exists(ctx context.Context, ref string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(s.path(ref))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Dir returns the backing directory, for serving blobs statically.
func (s *Store) Dir() string {
	return s.dir
}

// path confines the reference to the storage directory. References are
// opaque names, never paths.
func (s *Store) path(ref string) string {
	return filepath.Join(s.dir, filepath.Base(ref))
}
