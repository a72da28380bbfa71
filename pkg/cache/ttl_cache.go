package cache

import (
	"sync"
	"time"
)

// TTLCache is a tiny in-memory TTL key store.
// Values are not stored; only key existence within TTL is tracked.
// It is process-local and NOT suitable for distributed deployments.
type TTLCache struct {
	mu   sync.Mutex
	data map[string]time.Time // key -> expiry time
	now  func() time.Time
}

// NewTTLCache creates a new empty TTL cache.
func NewTTLCache() *TTLCache {
	return &TTLCache{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Used reports whether key is present and not expired.
// It lazily prunes expired entries on access.
func (c *TTLCache) Used(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	exp, ok := c.data[key]
	if !ok {
		return false
	}

	if c.now().After(exp) {
		delete(c.data, key)
		return false
	}

	return true
}

// Mark stores the key with a time-to-live and prunes expired keys.
func (c *TTLCache) Mark(key string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()

	for k, exp := range c.data {
		if now.After(exp) {
			delete(c.data, k)
		}
	}

	c.data[key] = now.Add(ttl)
}

func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.data)
}
