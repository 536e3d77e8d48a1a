// Package cache provides a generic, thread-safe LRU cache with hit and
// eviction counters. The invariant checker keeps compiled FHIRPath
// expressions in it, keyed by expression source.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

// Cache is a generic thread-safe LRU cache.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]*list.Element
	order    *list.List
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
	evicts atomic.Uint64
	sets   atomic.Uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a Cache holding at most capacity items.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get returns the value stored under key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Set stores value under key, evicting the least recently used item when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// set must be called with mu held.
func (c *Cache[K, V]) set(key K, value V) {
	c.sets.Add(1)
	if el, ok := c.items[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}
	if len(c.items) >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.items, oldest.Value.(*entry[K, V]).key)
			c.order.Remove(oldest)
			c.evicts.Add(1)
		}
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// GetOrSet returns the value stored under key, computing and storing it
// with fn on a miss. fn runs with the cache locked, so concurrent callers
// asking for the same key compute it once.
func (c *Cache[K, V]) GetOrSet(key K, fn func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.hits.Add(1)
		c.order.MoveToFront(el)
		return el.Value.(*entry[K, V]).value
	}
	c.misses.Add(1)
	value := fn()
	c.set(key, value)
	return value
}

// Delete removes key from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		delete(c.items, key)
		c.order.Remove(el)
	}
}

// Len returns the number of cached items.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear removes all items. Counters are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

// Stats holds cache statistics.
type Stats struct {
	Size     int
	Capacity int
	Hits     uint64
	Misses   uint64
	Evicts   uint64
	Sets     uint64
	HitRate  float64
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	s := Stats{
		Size:     c.Len(),
		Capacity: c.capacity,
		Hits:     hits,
		Misses:   misses,
		Evicts:   c.evicts.Load(),
		Sets:     c.sets.Load(),
	}
	if total := hits + misses; total > 0 {
		s.HitRate = float64(hits) / float64(total)
	}
	return s
}
