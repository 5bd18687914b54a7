package repository

import "context"

// Storage is the durable slot a cart snapshot is written to. Every write
// replaces the previous snapshot under the same key.
type Storage interface {
	// Load returns model.ErrCartNotFound when nothing is stored under key
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, snapshot []byte) error
	Delete(ctx context.Context, key string) error
}
