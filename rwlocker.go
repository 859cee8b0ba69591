package lru

// RWLocker is the locking surface of sync.RWMutex, so the cache lock can be
// swapped for a no-op in single-owner use.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// NoOpRWLocker is a dummy noop implementation of RWLocker interface
type NoOpRWLocker struct{}

// Lock perform noop Lock() operation
func (nop NoOpRWLocker) Lock() {}

// Unlock perform noop Unlock() operation
func (nop NoOpRWLocker) Unlock() {}

// RLock perform noop RLock() operation
func (nop NoOpRWLocker) RLock() {}

// RUnlock perform noop RUnlock() operation
func (nop NoOpRWLocker) RUnlock() {}
