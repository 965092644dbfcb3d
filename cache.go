package routecheck

import "container/list"

// CacheStats reports accumulated cache traffic.
type CacheStats struct {
	Hits   int
	Misses int
	Size   int
}

type cacheEntry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-capacity memoizing store with least-recently-used
// eviction. It is not safe for concurrent use; every component in this
// package assumes a single logical writer per analysis run.
type Cache[K comparable, V any] struct {
	capacity int
	entries  map[K]*list.Element
	order    *list.List // front = least recently used
	hits     int
	misses   int
}

// NewCache returns a cache holding at most capacity entries. A
// capacity below one is raised to one so the cache always functions.
func NewCache[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached value and refreshes its recency.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if el, ok := c.entries[key]; ok {
		c.hits++
		c.order.MoveToBack(el)
		return el.Value.(*cacheEntry[K, V]).value, true
	}

	c.misses++
	var zero V
	return zero, false
}

// Set stores a value. An existing key is refreshed in place without a
// capacity check; a new key evicts the least-recently-used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry[K, V]).value = value
		c.order.MoveToBack(el)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry[K, V]).key)
		}
	}

	c.entries[key] = c.order.PushBack(&cacheEntry[K, V]{key: key, value: value})
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int {
	return c.order.Len()
}

// Stats returns hit/miss counters and the current size.
func (c *Cache[K, V]) Stats() CacheStats {
	return CacheStats{Hits: c.hits, Misses: c.misses, Size: c.order.Len()}
}

// HitRate returns hits/(hits+misses), or 0 before any traffic.
func (c *Cache[K, V]) HitRate() float64 {
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}

// Clear empties the store and resets the counters.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*list.Element, c.capacity)
	c.order.Init()
	c.hits = 0
	c.misses = 0
}
