// Package cache provides the bounded, TTL, thread-safe key/value store
// backing the dedup, validation and data caches. It wraps
// hashicorp/golang-lru/v2's expirable LRU, adding hit/miss/size
// counters.
package cache

import (
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// Cache is a generic bounded, TTL-evicting, concurrency-safe store. The
// zero value is not usable; construct with New.
type Cache[V any] struct {
	lru       *lru.LRU[string, V]
	hits      atomic.Int64
	misses    atomic.Int64
	acquireMu sync.Mutex // serializes the check-then-set in SetIfAbsent
}

// New builds a Cache with the given approximate-LRU size bound and a
// fixed per-entry TTL measured from insertion.
func New[V any](maxSize int, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		lru: lru.NewLRU[string, V](maxSize, nil, ttl),
	}
}

// Get returns the cached value for key, recording a hit or miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Peek reads without affecting recency or hit/miss counters, so tests
// can assert on cache contents without perturbing stats.
func (c *Cache[V]) Peek(key string) (V, bool) {
	return c.lru.Peek(key)
}

// Set inserts or updates key, evicting the least-recently-used entry if
// the cache is at capacity.
func (c *Cache[V]) Set(key string, value V) {
	c.lru.Add(key, value)
}

// SetIfAbsent performs an atomic put-if-absent, returning true iff the
// key was absent and is now claimed with value. This is the primitive
// the Dedup Service's tryAcquire is built on.
func (c *Cache[V]) SetIfAbsent(key string, value V) bool {
	c.acquireMu.Lock()
	defer c.acquireMu.Unlock()

	if _, ok := c.lru.Peek(key); ok {
		return false
	}
	c.lru.Add(key, value)
	return true
}

// Invalidate removes key, if present.
func (c *Cache[V]) Invalidate(key string) {
	c.lru.Remove(key)
}

// Stats returns current hit/miss counters and size.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
