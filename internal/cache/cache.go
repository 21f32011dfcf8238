// Package cache provides concurrent in-memory caches with telemetry counters.
package cache

import (
	"context"

	"github.com/gruntwork-io/notecards/internal/telemetry"
	"github.com/puzpuzpuz/xsync/v3"
)

// Cache is a generic concurrent cache. Every access is counted under Name.
type Cache[K comparable, V any] struct {
	Name    string
	entries *xsync.MapOf[K, V]
}

// NewCache creates an empty cache.
func NewCache[K comparable, V any](name string) *Cache[K, V] {
	return &Cache[K, V]{
		Name:    name,
		entries: xsync.NewMapOf[K, V](),
	}
}

// Get fetches the value stored under key.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, bool) {
	value, found := c.entries.Load(key)

	telemetry.Count(ctx, c.Name+"_cache_get", 1)

	if found {
		telemetry.Count(ctx, c.Name+"_cache_hit", 1)
	} else {
		telemetry.Count(ctx, c.Name+"_cache_miss", 1)
	}

	return value, found
}

// Put stores value under key, replacing any previous value.
func (c *Cache[K, V]) Put(ctx context.Context, key K, value V) {
	telemetry.Count(ctx, c.Name+"_cache_put", 1)
	c.entries.Store(key, value)
}

// Delete removes key.
func (c *Cache[K, V]) Delete(key K) {
	c.entries.Delete(key)
}

// DeleteFunc removes every entry for which fn returns true.
func (c *Cache[K, V]) DeleteFunc(fn func(key K, value V) bool) {
	c.entries.Range(func(key K, value V) bool {
		if fn(key, value) {
			c.entries.Delete(key)
		}

		return true
	})
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	return c.entries.Size()
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.entries.Clear()
}
