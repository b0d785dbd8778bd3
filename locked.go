package gencache

import "sync"

// lockedCache guards the core with a single mutex.
// Get mutates (expiry, promotion), so there is no read lock.
type lockedCache[K comparable, V any] struct {
	mu sync.Mutex
	c  *cache[K, V]
}

func (l *lockedCache[K, V]) Get(key K) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Get(key)
}

func (l *lockedCache[K, V]) Set(key K, value V) {
	l.mu.Lock()
	l.c.Set(key, value)
	l.mu.Unlock()
}

func (l *lockedCache[K, V]) Delete(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Delete(key)
}

func (l *lockedCache[K, V]) Clear() {
	l.mu.Lock()
	l.c.Clear()
	l.mu.Unlock()
}

func (l *lockedCache[K, V]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Stats()
}
