// Package testutils holds cache test sweeps shared between the locked
// wrapper and the raw engine, driven through the LRUCache interface.
package testutils

import (
	"testing"

	"github.com/okanite/lru/simplelru"
)

// BasicTest drives a cache through a full insert/evict/lookup/remove/purge
// sweep and checks every step against the expected recency order.
func BasicTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int, evictCounter *int) {
	// put twice the capacity to force evictions
	for i := 0; i < 2*capacity; i++ {
		l.Put(i, i)
	}

	if l.Len() != capacity {
		t.Fatalf("bad len: %v", l.Len())
	}

	// the first half should have been evicted to make room for the second
	if *evictCounter != capacity {
		t.Fatalf("bad evict count: %v", *evictCounter)
	}

	// cache should contain only the keys from capacity..2*capacity, anything
	// before that should have been evicted
	for i, k := range l.Keys() {
		if v, ok := l.Get(k); !ok || v != k || v != i+capacity {
			t.Fatalf("bad key: %v", k)
		}
	}

	for i := 0; i < capacity; i++ {
		if _, ok := l.Get(i); ok {
			t.Fatalf("should be evicted")
		}
	}

	for i := capacity; i < 2*capacity; i++ {
		if _, ok := l.Get(i); !ok {
			t.Fatalf("should not be evicted")
		}
	}

	// delete half the items from cache
	lastIndex := capacity + capacity/2
	for i := capacity; i < lastIndex; i++ {
		if ok := l.Remove(i); !ok {
			t.Fatalf("should be contained")
		}
		if ok := l.Remove(i); ok {
			t.Fatalf("should not be contained")
		}
		if _, ok := l.Get(i); ok {
			t.Fatalf("should be deleted")
		}
	}

	// this makes lastIndex the most recently accessed; moved to the front
	l.Get(lastIndex)

	// half the items were deleted, half the capacity should remain
	cacheLen := l.Len()
	if capacity-capacity/2 != cacheLen {
		t.Fatalf("invalid len. expected %v, got %v", capacity-capacity/2, cacheLen)
	}

	// Keys returns items from oldest to newest, with lastIndex now last
	for i, k := range l.Keys() {
		if (i == cacheLen-1 && k != lastIndex) || (i < cacheLen-1 && k != i+lastIndex+1) {
			t.Fatalf("out of order key: %v %v %v", i, k, cacheLen-1)
		}
	}

	l.Purge()
	if l.Len() != 0 {
		t.Fatalf("bad len: %v", l.Len())
	}

	if _, ok := l.Get(200); ok {
		t.Fatalf("should contain nothing")
	}
}

// GetOldestRemoveOldestTest checks that the oldest-entry accessors track the
// eviction candidate.
func GetOldestRemoveOldestTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int) {
	// put twice the capacity
	for i := 0; i < 2*capacity; i++ {
		l.Put(i, i)
	}

	k, _, ok := l.GetOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != capacity {
		t.Fatalf("bad: %v", k)
	}

	k, _, ok = l.RemoveOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != capacity {
		t.Fatalf("bad: %v", k)
	}

	k, _, ok = l.RemoveOldest()
	if !ok {
		t.Fatalf("missing")
	}
	if k != capacity+1 {
		t.Fatalf("bad: %v", k)
	}
}

// PutTest checks the replaced-value contract of Put: inserts report no prior
// value, updates return the one they replaced without growing the cache.
func PutTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int, evictCounter *int) {
	for i := 0; i < capacity; i++ {
		if _, replaced := l.Put(i, i); replaced || *evictCounter != 0 {
			t.Errorf("should not have replaced or evicted")
		}
	}

	// updating an existing key returns the previous value and evicts nothing
	prev, replaced := l.Put(0, -1)
	if !replaced || prev != 0 {
		t.Errorf("bad previous value: %v %v", prev, replaced)
	}
	if l.Len() != capacity || *evictCounter != 0 {
		t.Errorf("update should not grow or evict: %v %v", l.Len(), *evictCounter)
	}

	// a genuinely new key at capacity evicts the oldest
	if _, replaced := l.Put(capacity, capacity); replaced || *evictCounter != 1 {
		t.Errorf("should have an eviction")
	}
}

// ContainsTest checks that Contains does not refresh recency.
func ContainsTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int) {
	for i := 0; i < capacity; i++ {
		l.Put(i, i)
	}

	// contains should not update the recent-ness so this item stays oldest
	if !l.Contains(0) {
		t.Errorf("0 should be contained")
	}

	// oldest (0) should have been evicted
	l.Put(capacity, capacity)
	if l.Contains(0) {
		t.Errorf("Contains should not have updated recent-ness of 0")
	}
}

// PeekTest checks that Peek does not refresh recency.
func PeekTest(t *testing.T, l simplelru.LRUCache[int, int], capacity int) {
	for i := 0; i < capacity; i++ {
		l.Put(i, i)
	}

	if v, ok := l.Peek(1); !ok || v != 1 {
		t.Errorf("1 should be set to 1: %v, %v", v, ok)
	}

	l.Put(capacity, capacity)
	if l.Contains(0) {
		t.Errorf("should have been removed to make room for the new item")
	}
}
