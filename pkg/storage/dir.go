package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir stores documents as files under a root directory.
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at root. The directory is created on first write.
func NewDir(root string) *Dir {
	if root == "" {
		root = "."
	}
	return &Dir{root: root}
}

// Root returns the directory documents are written under.
func (d *Dir) Root() string {
	return d.root
}

// Put writes data to {root}/{key}, creating parent directories as needed.
func (d *Dir) Put(ctx context.Context, key string, data []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := d.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	return nil
}

// Get reads {root}/{key}.
func (d *Dir) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := d.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	return data, nil
}

// Location returns the file path of key.
func (d *Dir) Location(key string) string {
	return filepath.Join(d.root, filepath.FromSlash(key))
}

func (d *Dir) path(key string) (string, error) {
	if key == "" || !filepath.IsLocal(filepath.FromSlash(key)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return d.Location(key), nil
}

var _ Storage = (*Dir)(nil)
