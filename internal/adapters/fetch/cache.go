package fetch

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache holds fetched dictionary bodies keyed by URL.
type Cache struct {
	cache *gocache.Cache
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache(ttl, cleanupInterval time.Duration) *Cache {
	return &Cache{cache: gocache.New(ttl, cleanupInterval)}
}

// Get retrieves a body from the cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a body with the default TTL.
func (c *Cache) Set(key string, body []byte) {
	c.cache.SetDefault(key, body)
}

// Delete removes a body from the cache.
func (c *Cache) Delete(key string) {
	c.cache.Delete(key)
}
