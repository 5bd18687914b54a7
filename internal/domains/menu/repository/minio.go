package repository

import (
	"context"
	"fmt"
)

type minioRepository struct {
	store ObjectStore
	key   string
}

// NewMinIORepository serves the catalog from a single object in the bucket
func NewMinIORepository(store ObjectStore, key string) Repository {
	return &minioRepository{store: store, key: key}
}

func (r *minioRepository) Source() string { return "minio:" + r.key }

func (r *minioRepository) Load(ctx context.Context) ([]byte, error) {
	data, err := r.store.Download(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("download menu %s: %w", r.key, err)
	}
	return data, nil
}

func (r *minioRepository) Save(ctx context.Context, document []byte) error {
	if err := r.store.Upload(ctx, r.key, document, "application/json"); err != nil {
		return fmt.Errorf("upload menu %s: %w", r.key, err)
	}
	return nil
}
