package lru

import (
	"sync"

	"github.com/okanite/lru/simplelru"
)

// Cache is a thread-safe fixed size LRU cache.
type Cache[K comparable, V any] struct {
	lru  *simplelru.LRU[K, V]
	lock RWLocker

	// in-flight Fetch fills, keyed by the key being computed
	calls   map[K]*call[V]
	callsMu sync.Mutex
}

// New creates an LRU of the given size. A size of 0 is valid and keeps at
// most the single most recent insertion.
func New[K comparable, V any](size int) *Cache[K, V] {
	return NewWithEvict[K, V](size, nil)
}

// NewWithEvict constructs a fixed size cache with the given eviction
// callback. The callback runs while the cache lock is held and must not
// call back into the cache.
func NewWithEvict[K comparable, V any](size int, onEvicted func(key K, value V)) *Cache[K, V] {
	return &Cache[K, V]{
		lru:   simplelru.NewLRU(size, simplelru.EvictCallback[K, V](onEvicted)),
		lock:  &sync.RWMutex{},
		calls: make(map[K]*call[V]),
	}
}

// NewSingleOwner creates an LRU of the given size without internal locking,
// for callers that guarantee every operation runs under a single logical
// owner. All other behavior matches New.
func NewSingleOwner[K comparable, V any](size int) *Cache[K, V] {
	c := NewWithEvict[K, V](size, nil)
	c.lock = NoOpRWLocker{}
	return c
}

// Put stores value under key and returns the value it replaced, if any.
// When the cache is at capacity, storing a new key evicts the least
// recently used entry.
func (c *Cache[K, V]) Put(key K, value V) (previous V, replaced bool) {
	c.lock.Lock()
	previous, replaced = c.lru.Put(key, value)
	c.lock.Unlock()
	return previous, replaced
}

// Get looks up a key's value from the cache. It takes the write lock: a hit
// moves the entry to the most recently used position.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.lock.Lock()
	value, ok = c.lru.Get(key)
	c.lock.Unlock()
	return value, ok
}

// Update applies fn to the value stored under key inside the critical
// section, refreshing the entry's recency, and reports whether the key was
// present. fn must not call back into the cache.
func (c *Cache[K, V]) Update(key K, fn func(value *V)) bool {
	c.lock.Lock()
	v, ok := c.lru.GetMut(key)
	if ok {
		fn(v)
	}
	c.lock.Unlock()
	return ok
}

// Contains checks if a key is in the cache, without updating the
// recent-ness.
func (c *Cache[K, V]) Contains(key K) bool {
	c.lock.RLock()
	containKey := c.lru.Contains(key)
	c.lock.RUnlock()
	return containKey
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	c.lock.RLock()
	value, ok = c.lru.Peek(key)
	c.lock.RUnlock()
	return value, ok
}

// Remove removes the provided key from the cache, returning if the key was
// contained.
func (c *Cache[K, V]) Remove(key K) (present bool) {
	c.lock.Lock()
	present = c.lru.Remove(key)
	c.lock.Unlock()
	return
}

// RemoveOldest removes the oldest item from the cache.
func (c *Cache[K, V]) RemoveOldest() (key K, value V, ok bool) {
	c.lock.Lock()
	key, value, ok = c.lru.RemoveOldest()
	c.lock.Unlock()
	return
}

// GetOldest returns the oldest entry without removing it.
func (c *Cache[K, V]) GetOldest() (key K, value V, ok bool) {
	c.lock.RLock()
	key, value, ok = c.lru.GetOldest()
	c.lock.RUnlock()
	return
}

// Keys returns a slice of the keys in the cache, from oldest to newest.
func (c *Cache[K, V]) Keys() []K {
	c.lock.RLock()
	keys := c.lru.Keys()
	c.lock.RUnlock()
	return keys
}

// Values returns a slice of the values in the cache, from oldest to newest.
func (c *Cache[K, V]) Values() []V {
	c.lock.RLock()
	values := c.lru.Values()
	c.lock.RUnlock()
	return values
}

// Len returns the number of items in the cache.
func (c *Cache[K, V]) Len() int {
	c.lock.RLock()
	length := c.lru.Len()
	c.lock.RUnlock()
	return length
}

// Purge is used to completely clear the cache.
func (c *Cache[K, V]) Purge() {
	c.lock.Lock()
	c.lru.Purge()
	c.lock.Unlock()
}
