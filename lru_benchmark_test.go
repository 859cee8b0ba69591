package lru

import (
	"strconv"
	"testing"
)

const benchmarkCapacity = 1024

func BenchmarkLRU_Rand(b *testing.B) {
	l := New[int64, int64](8192)

	trace := make([]int64, b.N*2)
	for i := 0; i < b.N*2; i++ {
		trace[i] = getRand(b) % 32768
	}

	b.ResetTimer()

	var hit, miss int
	for i := 0; i < 2*b.N; i++ {
		if i%2 == 0 {
			l.Put(trace[i], trace[i])
		} else {
			if _, ok := l.Get(trace[i]); ok {
				hit++
			} else {
				miss++
			}
		}
	}
	b.Logf("hit: %d miss: %d ratio: %f", hit, miss, float64(hit)/float64(hit+miss))
}

func BenchmarkLRU_Freq(b *testing.B) {
	l := New[int64, int64](8192)

	trace := make([]int64, b.N*2)
	for i := 0; i < b.N*2; i++ {
		if i%2 == 0 {
			trace[i] = getRand(b) % 16384
		} else {
			trace[i] = getRand(b) % 32768
		}
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Put(trace[i], trace[i])
	}
	var hit, miss int
	for i := 0; i < b.N; i++ {
		if _, ok := l.Get(trace[i]); ok {
			hit++
		} else {
			miss++
		}
	}
	b.Logf("hit: %d miss: %d ratio: %f", hit, miss, float64(hit)/float64(hit+miss))
}

// BenchmarkLRU_Put measures the cost of adding items to the cache
// when the cache is not yet full.
func BenchmarkLRU_Put(b *testing.B) {
	cache := New[int, int](benchmarkCapacity)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cache.Put(i, i)
	}
}

// BenchmarkLRU_Get_Hit measures the cost of a cache hit.
// This represents the most common and performance-critical path.
func BenchmarkLRU_Get_Hit(b *testing.B) {
	cache := New[int, int](benchmarkCapacity)

	// Pre-fill the cache to ensure all Get operations are hits.
	for i := 0; i < benchmarkCapacity; i++ {
		cache.Put(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cache.Get(i % benchmarkCapacity)
	}
}

// BenchmarkLRU_Put_Eviction measures the cost of adding items
// when the cache is full and evictions occur.
func BenchmarkLRU_Put_Eviction(b *testing.B) {
	cache := New[int, int](benchmarkCapacity)

	// Fill the cache to capacity.
	for i := 0; i < benchmarkCapacity; i++ {
		cache.Put(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cache.Put(i+benchmarkCapacity, i)
	}
}

// BenchmarkLRU_Get_Parallel measures concurrent cache reads,
// reflecting real-world usage in multi-goroutine environments.
func BenchmarkLRU_Get_Parallel(b *testing.B) {
	cache := New[string, string](benchmarkCapacity)

	for i := 0; i < benchmarkCapacity; i++ {
		key := strconv.Itoa(i)
		cache.Put(key, key)
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			cache.Get(strconv.Itoa(i % benchmarkCapacity))
			i++
		}
	})
}

// BenchmarkLRU_SingleOwner_Get_Hit measures the hit path without locking.
func BenchmarkLRU_SingleOwner_Get_Hit(b *testing.B) {
	cache := NewSingleOwner[int, int](benchmarkCapacity)

	for i := 0; i < benchmarkCapacity; i++ {
		cache.Put(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cache.Get(i % benchmarkCapacity)
	}
}
