package cache

import (
	"sync"
	"time"
)

// AddressCache memoizes geocoded address lookups. Latency on the render path
// matters more than freshness; geocoded addresses are assumed stable, so the
// default is no expiry at all.
type AddressCache struct {
	mu      sync.RWMutex
	ttl     time.Duration // 0 means entries never expire
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	value   string
	storedAt time.Time
}

// NewAddressCache creates an address cache. A ttl of 0 disables expiry.
func NewAddressCache(ttl time.Duration) *AddressCache {
	return &AddressCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get retrieves a cached value by key
func (c *AddressCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.ttl > 0 && c.now().Sub(e.storedAt) > c.ttl {
		return "", false
	}
	return e.value, true
}

// Set stores a value by key
func (c *AddressCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// Len returns the number of stored entries, including expired ones
func (c *AddressCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset clears all entries from the cache
func (c *AddressCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
