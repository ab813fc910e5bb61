package cache

import (
	"container/list"
	"sync"
)

// DefaultMaxEntries is the eviction bound used when none is configured.
const DefaultMaxEntries = 50

// entry holds a cached value together with its key so eviction can
// remove the map entry without a reverse lookup.
type entry[V any] struct {
	value V
	key   string
}

// FIFO is a bounded memoization table with insertion-order eviction.
//
// It uses a hash map for O(1) lookups and a doubly-linked list to track
// insertion order. When the bound is reached, the oldest inserted entry
// is evicted first. Lookups do not promote entries: this is deliberately
// FIFO rather than LRU, since memoized formatter and parse results have
// no meaningful recency signal and FIFO keeps eviction O(1) and simple.
type FIFO[V any] struct {
	items      map[string]*list.Element
	order      *list.List
	maxEntries int
	mu         sync.Mutex
}

// NewFIFO creates a bounded FIFO cache. A non-positive max falls back to
// DefaultMaxEntries.
func NewFIFO[V any](maxEntries int) *FIFO[V] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &FIFO[V]{
		items:      make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: maxEntries,
	}
}

// Get retrieves a value by key.
func (c *FIFO[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return elem.Value.(*entry[V]).value, true
}

// Set stores a value under key, evicting the oldest inserted entry when
// the bound is exceeded. Updating an existing key keeps its original
// insertion position.
func (c *FIFO[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		return
	}

	if len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	elem := c.order.PushBack(&entry[V]{key: key, value: value})
	c.items[key] = elem
}

// GetOrSet returns the cached value for key, or computes it via fn and
// stores the result.
func (c *FIFO[V]) GetOrSet(key string, fn func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := fn()
	c.Set(key, v)
	return v
}

// Len returns the current number of cached entries.
func (c *FIFO[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Has reports whether key is present.
func (c *FIFO[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

// Clear removes all entries. Safe to call at any time; cached values are
// purely derived, so clearing only costs recomputation.
func (c *FIFO[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.order.Init()
}

// evictOldest removes the oldest inserted entry.
// Caller must hold the mutex.
func (c *FIFO[V]) evictOldest() {
	elem := c.order.Front()
	if elem == nil {
		return
	}
	c.order.Remove(elem)
	delete(c.items, elem.Value.(*entry[V]).key)
}
