package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist (or expired)
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the key/value contract used for session-scoped snapshots.
// Implementations: Redis (infrastructure/cache.RedisCache) and an in-process
// map (infrastructure/cache.MemoryCache).
type Cache interface {
	// Get returns the raw value stored under key, or ErrCacheMiss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites key with value. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the given keys; missing keys are ignored
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the backend is reachable
	Ping(ctx context.Context) error
}
