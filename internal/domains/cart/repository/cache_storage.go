package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kahramana-backend/internal/domains/cart/model"
	"kahramana-backend/pkg/cache"
)

type cacheStorage struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewCacheStorage keeps snapshots in a key/value cache (Redis in
// production, the in-process cache in tests and local runs). Every save
// refreshes the TTL.
func NewCacheStorage(c cache.Cache, ttl time.Duration) Storage {
	return &cacheStorage{cache: c, ttl: ttl}
}

func (s *cacheStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, model.ErrCartNotFound
		}
		return nil, fmt.Errorf("load cart %s: %w", key, err)
	}
	return data, nil
}

func (s *cacheStorage) Save(ctx context.Context, key string, snapshot []byte) error {
	if err := s.cache.Set(ctx, key, snapshot, s.ttl); err != nil {
		return fmt.Errorf("save cart %s: %w", key, err)
	}
	return nil
}

func (s *cacheStorage) Delete(ctx context.Context, key string) error {
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete cart %s: %w", key, err)
	}
	return nil
}
