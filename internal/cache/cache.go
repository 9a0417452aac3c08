package cache

import (
	"fmt"
	"strings"
	"time"

	goCache "github.com/patrickmn/go-cache"
)

// DefaultExpiration is the default expiration time for cache entries
const DefaultExpiration = 30 * time.Second

// DefaultCleanupInterval is how often expired items are removed
const DefaultCleanupInterval = 5 * time.Minute

// Cache key prefixes per entity type
const (
	PrefixDashboardStats = "dashboard_stats:v1:"
)

// Cache is a thin TTL cache used for dashboard aggregations.
type Cache struct {
	cache *goCache.Cache
}

// New creates a cache with the default expiration and cleanup interval.
func New() *Cache {
	return &Cache{cache: goCache.New(DefaultExpiration, DefaultCleanupInterval)}
}

// Get retrieves a value and whether the key was present.
func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

// Set stores a value with the given expiration; 0 uses the default.
func (c *Cache) Set(key string, value interface{}, expiration time.Duration) {
	c.cache.Set(key, value, expiration)
}

// DeleteByPrefix removes all keys with the given prefix.
func (c *Cache) DeleteByPrefix(prefix string) {
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}
}

// GenerateKey creates a cache key from a prefix and a set of parameters.
func GenerateKey(prefix string, params ...interface{}) string {
	parts := make([]string, len(params)+1)
	parts[0] = prefix
	for i, param := range params {
		parts[i+1] = fmt.Sprintf("%v", param)
	}
	return strings.Join(parts, ":")
}
