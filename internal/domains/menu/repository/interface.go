package repository

import "context"

// Repository reads and writes the raw catalog document. Parsing and
// normalization belong to the service.
type Repository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, document []byte) error
	Source() string
}

// ObjectStore is the subset of the object storage client the MinIO
// repository needs
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
}
