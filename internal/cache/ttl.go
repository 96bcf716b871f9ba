// Package cache provides a minimal in-memory TTL cache used in front of the
// SIX and SNB upstreams. Entries expire lazily on read; there is no background
// eviction.
package cache

import (
	"sync"
	"time"
)

// now is an indirection for the clock; tests can override it.
var now = time.Now

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache maps string keys to values with a fixed time-to-live.
// It is safe for concurrent use.
type TTLCache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[V]
}

// New returns a TTLCache whose entries live for ttl after each Set.
func New[V any](ttl time.Duration) *TTLCache[V] {
	return &TTLCache[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key and whether it was present and fresh.
// An expired entry is removed and reported as a miss.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, resetting its lifetime.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiresAt: now().Add(c.ttl)}
}

// Len reports the number of stored entries, including ones that may have
// expired but were not read since.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
