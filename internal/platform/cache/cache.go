// Package cache provides a bounded in-memory LRU cache.
package cache

import (
	"container/list"
	"sync"
)

// entry is a cached item and its position in the recency list.
type entry[K comparable, V any] struct {
	key     K
	value   V
	element *list.Element
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits      int
	Misses    int
	Evictions int
	Size      int
	Capacity  int
}

// LRU is a fixed-capacity cache that evicts the least recently used item.
// It is safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu        sync.Mutex
	capacity  int
	items     map[K]*entry[K, V]
	lruList   *list.List // front = most recent
	hits      int
	misses    int
	evictions int
}

// DefaultCapacity is used when New receives a non-positive capacity.
const DefaultCapacity = 1024

// New creates an LRU holding at most capacity items.
//
// Example:
//
//	c := cache.New[string, string](4096)
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*entry[K, V]),
		lruList:  list.New(),
	}
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.lruList.MoveToFront(e.element)
	return e.value, true
}

// Set stores value under key, evicting the least recently used item when full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		e.value = value
		c.lruList.MoveToFront(e.element)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictLRU()
	}

	e := &entry[K, V]{key: key, value: value}
	e.element = c.lruList.PushFront(e)
	c.items[key] = e
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. compute runs without the lock held.
func (c *LRU[K, V]) GetOrCompute(key K, compute func(K) V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute(key)
	c.Set(key, v)
	return v
}

// Len returns the number of cached items.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns hit, miss and eviction counters.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// evictLRU removes the least recently used item. Must be called with c.mu held.
func (c *LRU[K, V]) evictLRU() {
	back := c.lruList.Back()
	if back == nil {
		return
	}
	c.deleteEntry(back.Value.(*entry[K, V]))
	c.evictions++
}

// deleteEntry must be called with c.mu held.
func (c *LRU[K, V]) deleteEntry(e *entry[K, V]) {
	delete(c.items, e.key)
	c.lruList.Remove(e.element)
}
