package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type fileRepository struct {
	path string
}

// NewFileRepository serves the catalog from a JSON file on disk
func NewFileRepository(path string) Repository {
	return &fileRepository{path: path}
}

func (r *fileRepository) Source() string { return "file:" + r.path }

func (r *fileRepository) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return data, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target so readers never see a half-written document.
func (r *fileRepository) Save(ctx context.Context, document []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create menu dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".menu-*.json")
	if err != nil {
		return fmt.Errorf("create temp menu file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(document); err != nil {
		tmp.Close()
		return fmt.Errorf("write menu file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close menu file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace menu file: %w", err)
	}
	return nil
}
