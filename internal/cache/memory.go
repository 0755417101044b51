package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache for fetched collections. A batch run may
// name the same collection URL more than once; the cache keeps the second
// fetch local.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a cached value
func (m *Memory) Get(key string) ([]byte, bool) {
	if val, found := m.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value with the given TTL (0 = default TTL)
func (m *Memory) Set(key string, value []byte, ttl time.Duration) error {
	m.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a value
func (m *Memory) Delete(key string) error {
	m.cache.Delete(key)
	return nil
}

// Clear removes all values
func (m *Memory) Clear() error {
	m.cache.Flush()
	return nil
}
