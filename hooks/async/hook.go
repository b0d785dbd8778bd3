// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{ExpiredEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := gencache.New[string, User](gencache.Options{
//	    Max:   10_000,
//	    TTL:   5 * time.Minute,
//	    Hooks: hooks,
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/gencache"
)

// Hooks forwards events to inner on worker goroutines so a slow sink never
// stalls the cache lock. Events are dropped when the queue is full.
type Hooks struct {
	inner   gencache.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ gencache.Hooks = (*Hooks)(nil)

func New(inner gencache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Later events are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded (queue full or closed).
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) Rotated(n int)          { h.try(func() { h.inner.Rotated(n) }) }
func (h *Hooks) Expired(gen string)     { h.try(func() { h.inner.Expired(gen) }) }
func (h *Hooks) Promoted()              { h.try(func() { h.inner.Promoted() }) }
func (h *Hooks) Cleared(n int)          { h.try(func() { h.inner.Cleared(n) }) }
func (h *Hooks) DecodeFailed(err error) { h.try(func() { h.inner.DecodeFailed(err) }) }
