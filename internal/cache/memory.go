package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory implements in-memory caching with per-entry TTL
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a new memory cache
func NewMemory(defaultTTL time.Duration, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *Memory) Get(key string) (string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores a value in the cache with the given TTL
func (c *Memory) Set(key string, value string, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Clear removes all values from the cache
func (c *Memory) Clear() {
	c.cache.Flush()
}
