package simplelru

// EvictCallback is used to get a callback when a cache entry is evicted
type EvictCallback[K comparable, V any] func(key K, value V)

// LRU implements a non-thread safe fixed size LRU cache. The recency list
// owns the entries; the items map indexes the same entries by key, so the
// two structures always hold exactly the same key set.
type LRU[K comparable, V any] struct {
	maxLen    int
	evictList *entryList[K, V]
	items     map[K]*entry[K, V]
	onEvict   EvictCallback[K, V]
}

// NewLRU constructs an LRU bounded at maxLen entries. A negative maxLen is
// treated as 0. A zero maxLen is valid: the cache then keeps only the single
// most recent insertion, and only until the Put that follows it.
func NewLRU[K comparable, V any](maxLen int, onEvict EvictCallback[K, V]) *LRU[K, V] {
	if maxLen < 0 {
		maxLen = 0
	}
	return &LRU[K, V]{
		maxLen:    maxLen,
		evictList: newList[K, V](),
		items:     make(map[K]*entry[K, V], maxLen+1),
		onEvict:   onEvict,
	}
}

// Put stores value under key and returns the value it replaced, if any.
// On a hit the entry keeps its identity: the value is swapped in place and
// the entry moves to the front. On a miss the oldest entry is evicted first
// whenever the cache is at capacity, then the new entry is linked at the
// front and indexed.
func (c *LRU[K, V]) Put(key K, value V) (previous V, replaced bool) {
	if ent, ok := c.items[key]; ok {
		c.evictList.moveToFront(ent)
		previous, ent.value = ent.value, value
		return previous, true
	}

	if len(c.items) >= c.maxLen {
		c.removeOldest()
	}

	c.items[key] = c.evictList.pushFront(key, value)
	return previous, false
}

// Get looks up a key's value from the cache, marking the entry as the most
// recently used.
func (c *LRU[K, V]) Get(key K) (value V, ok bool) {
	if ent, found := c.items[key]; found {
		c.evictList.moveToFront(ent)
		return ent.value, true
	}
	return
}

// GetMut returns a pointer to the value stored under key, marking the entry
// as the most recently used. The pointer is valid only until the next call
// that mutates the cache; callers must not hold it across operations.
func (c *LRU[K, V]) GetMut(key K) (value *V, ok bool) {
	if ent, found := c.items[key]; found {
		c.evictList.moveToFront(ent)
		return &ent.value, true
	}
	return nil, false
}

// Contains checks if a key is in the cache, without updating the recent-ness.
func (c *LRU[K, V]) Contains(key K) (ok bool) {
	_, ok = c.items[key]
	return ok
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *LRU[K, V]) Peek(key K) (value V, ok bool) {
	if ent, found := c.items[key]; found {
		return ent.value, true
	}
	return
}

// Remove removes the provided key from the cache, returning if the
// key was contained.
func (c *LRU[K, V]) Remove(key K) bool {
	if ent, ok := c.items[key]; ok {
		c.removeElement(ent)
		return true
	}
	return false
}

// RemoveOldest removes the oldest entry from the cache.
func (c *LRU[K, V]) RemoveOldest() (key K, value V, ok bool) {
	if ent := c.evictList.back(); ent != nil {
		c.removeElement(ent)
		return ent.key, ent.value, true
	}
	return
}

// GetOldest returns the oldest entry without removing it.
func (c *LRU[K, V]) GetOldest() (key K, value V, ok bool) {
	if ent := c.evictList.back(); ent != nil {
		return ent.key, ent.value, true
	}
	return
}

// Keys returns a slice of the keys in the cache, from oldest to newest.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for ent := c.evictList.back(); ent != nil; ent = ent.prevEntry() {
		keys = append(keys, ent.key)
	}
	return keys
}

// Values returns a slice of the values in the cache, from oldest to newest.
func (c *LRU[K, V]) Values() []V {
	values := make([]V, 0, len(c.items))
	for ent := c.evictList.back(); ent != nil; ent = ent.prevEntry() {
		values = append(values, ent.value)
	}
	return values
}

// Len returns the number of items in the cache.
func (c *LRU[K, V]) Len() int {
	return c.evictList.length()
}

// Purge clears the cache completely, releasing every remaining entry exactly
// once, oldest first.
func (c *LRU[K, V]) Purge() {
	for ent := c.evictList.popBack(); ent != nil; ent = c.evictList.popBack() {
		delete(c.items, ent.key)
		if c.onEvict != nil {
			c.onEvict(ent.key, ent.value)
		}
	}
}

// removeOldest removes the oldest entry from the cache.
func (c *LRU[K, V]) removeOldest() {
	if ent := c.evictList.back(); ent != nil {
		c.removeElement(ent)
	}
}

// removeElement is used to remove a given list entry from the cache
func (c *LRU[K, V]) removeElement(e *entry[K, V]) {
	c.evictList.remove(e)
	delete(c.items, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}
