// Package simplelru provides the non-thread safe LRU engine: a recency list
// of entries paired with a key index, kept mutually consistent under every
// operation.
package simplelru

// LRUCache is the interface for simple LRU cache.
type LRUCache[K comparable, V any] interface {
	// Stores a value under key, evicting the least recently used entry
	// when the cache is at capacity, and returns the value previously
	// stored under key if there was one.
	Put(key K, value V) (V, bool)

	// Returns key's value from the cache and
	// updates the "recently used"-ness of the key. #value, isFound
	Get(key K) (V, bool)

	// Checks if a key exists in cache without updating the recent-ness.
	Contains(key K) bool

	// Returns key's value without updating the "recently used"-ness of the key.
	Peek(key K) (V, bool)

	// Removes a key from the cache.
	Remove(key K) bool

	// Removes the oldest entry from cache.
	RemoveOldest() (K, V, bool)

	// Returns the oldest entry from the cache. #key, value, isFound
	GetOldest() (K, V, bool)

	// Returns a slice of the keys in the cache, from oldest to newest.
	Keys() []K

	// Returns a slice of the values in the cache, from oldest to newest.
	Values() []V

	// Returns the number of items in the cache.
	Len() int

	// Clears all cache entries.
	Purge()
}
