package cache

import (
	"context"
	"sync"
	"time"

	"kahramana-backend/pkg/cache"
	"kahramana-backend/pkg/logger"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process cache.Cache. Used when CART_STORAGE=memory
// and in tests. Expired keys are dropped on read and by Sweep; run
// StartJanitor to sweep periodically.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

var _ cache.Cache = (*MemoryCache)(nil)

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return nil, cache.ErrCacheMiss
	}
	if entry.expired(m.now()) {
		// the key may have been rewritten since the read lock was released
		m.mu.Lock()
		entry, ok = m.items[key]
		if ok && entry.expired(m.now()) {
			delete(m.items, key)
			ok = false
		}
		m.mu.Unlock()
		if !ok {
			return nil, cache.ErrCacheMiss
		}
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	entry := memoryEntry{value: stored}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.items[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.items, k)
	}
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Ping(context.Context) error { return nil }

// Sweep drops every expired key and returns how many were removed
func (m *MemoryCache) Sweep() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for k, e := range m.items {
		if e.expired(now) {
			delete(m.items, k)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps every interval until ctx is done
func (m *MemoryCache) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := m.Sweep(); n > 0 {
					logger.Info("Memory cache sweep", map[string]interface{}{
						"removed": n,
					})
				}
			}
		}
	}()
}
