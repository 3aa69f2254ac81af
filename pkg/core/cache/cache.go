package cache

import (
	"sync"
	"time"
)

// entry holds one cached value with its expiration
type entry[V any] struct {
	value      V
	expiration time.Time
}

func (e entry[V]) isExpired() bool {
	if e.expiration.IsZero() {
		return false // Never expires
	}
	return time.Now().After(e.expiration)
}

// Cache is a thread-safe in-memory cache with TTL support
type Cache[V any] struct {
	mu       sync.RWMutex
	items    map[string]entry[V]
	maxItems int
	ttl      time.Duration

	// Metrics
	hits   int64
	misses int64
}

// Config holds cache configuration
type Config struct {
	MaxItems int
	TTL      time.Duration
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 64,
		TTL:      5 * time.Minute,
	}
}

// New creates a new cache instance
func New[V any](cfg Config) *Cache[V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 64
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}

	return &Cache[V]{
		items:    make(map[string]entry[V]),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
	}
}

// Get retrieves a value from the cache
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V

	e, exists := c.items[key]
	if !exists {
		c.misses++
		return zero, false
	}

	if e.isExpired() {
		delete(c.items, key)
		c.misses++
		return zero, false
	}

	c.hits++
	return e.value, true
}

// Set stores a value in the cache with the default TTL
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict the entry closest to expiry when at capacity
	if len(c.items) >= c.maxItems {
		c.evictOldest()
	}

	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}

	c.items[key] = entry[V]{
		value:      value,
		expiration: exp,
	}
}

// Delete removes a value from the cache
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry[V])
}

// Size returns the number of items in the cache
func (c *Cache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache[V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hits = c.hits
	misses = c.misses
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// GetOrSet returns the cached value for key, computing and storing it
// via fn on a miss. A failed computation is not cached.
func (c *Cache[V]) GetOrSet(key string, fn func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}

	c.Set(key, val)
	return val, nil
}

// evictOldest removes the entry closest to expiry (lock must be held)
func (c *Cache[V]) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	first := true

	for key, e := range c.items {
		if first || e.expiration.Before(oldestTime) {
			oldestKey = key
			oldestTime = e.expiration
			first = false
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
