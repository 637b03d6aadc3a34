package repository

import (
	"sync"
	"time"
)

// Default TTLs for the two cache tiers. Freshly ranked results go stale fast;
// raw price history is cheap to reuse for much longer.
const (
	DefaultResultTTL = 180 * time.Second
	DefaultSeriesTTL = 3600 * time.Second
)

type cacheEntry[T any] struct {
	value    T
	storedAt time.Time
}

// TTLCache is a keyed store with passive, lookup-time expiry. There is no
// background eviction and no request coalescing: concurrent lookups past the
// TTL may each trigger an upstream refetch, which is an accepted race.
type TTLCache[T any] struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry[T]
	now     func() time.Time
}

func NewTTLCache[T any](ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		ttl:     ttl,
		entries: make(map[string]cacheEntry[T]),
		now:     time.Now,
	}
}

// Get returns the cached value for key, evicting it first if the TTL has
// passed since insertion.
func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	var zero T
	if !ok {
		return zero, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return zero, false
	}
	return entry.value, true
}

// Set stores value under key, resetting its insertion timestamp.
func (c *TTLCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry[T]{value: value, storedAt: c.now()}
}
