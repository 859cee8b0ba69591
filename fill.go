package lru

import "sync"

// call tracks one in-flight Fetch fill so that concurrent misses of the same
// key wait on a single computation instead of thundering.
type call[V any] struct {
	wg  sync.WaitGroup
	val V
	err error
}

// Fetch returns the value stored under key, computing and caching it with
// fill on a miss. Concurrent Fetch calls for the same key share one fill;
// every waiter receives the same result. The fill runs outside the cache
// lock. A failed fill caches nothing and its error is returned as is.
func (c *Cache[K, V]) Fetch(key K, fill func(K) (V, error)) (V, error) {
	c.lock.Lock()
	if v, ok := c.lru.Get(key); ok {
		c.lock.Unlock()
		return v, nil
	}
	c.lock.Unlock()

	c.callsMu.Lock()
	if cl, ok := c.calls[key]; ok {
		c.callsMu.Unlock()
		cl.wg.Wait()
		return cl.val, cl.err
	}
	cl := new(call[V])
	cl.wg.Add(1)
	c.calls[key] = cl
	c.callsMu.Unlock()

	// Another fill may have landed between the miss and the registration;
	// look again before computing.
	c.lock.Lock()
	if v, ok := c.lru.Get(key); ok {
		c.lock.Unlock()
		cl.val = v
		c.callsMu.Lock()
		delete(c.calls, key)
		c.callsMu.Unlock()
		cl.wg.Done()
		return cl.val, nil
	}
	c.lock.Unlock()

	cl.val, cl.err = fill(key)
	if cl.err == nil {
		c.lock.Lock()
		c.lru.Put(key, cl.val)
		c.lock.Unlock()
	}

	c.callsMu.Lock()
	delete(c.calls, key)
	c.callsMu.Unlock()
	cl.wg.Done()

	return cl.val, cl.err
}
