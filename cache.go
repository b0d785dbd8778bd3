package gencache

import "time"

type entry[V any] struct {
	val      V
	storedAt int64 // unix millis
}

// cache is the unsynchronized core. Callers other than lockedCache must own it exclusively.
type cache[K comparable, V any] struct {
	max   int
	ttlMs int64
	clock Clock
	log   Logger
	hooks Hooks

	active   map[K]entry[V]
	previous map[K]entry[V]
	size     int // entries in active only

	hits, misses, expired, promotions, rotations uint64
}

func newCache[K comparable, V any](opts Options) (*cache[K, V], error) {
	if opts.Max < 0 {
		return nil, &ConfigError{Field: "Max", Value: opts.Max, Reason: "must be positive"}
	}

	c := &cache[K, V]{
		active:   make(map[K]entry[V]),
		previous: make(map[K]entry[V]),
	}

	// defaults
	c.max = coalesce[int](opts.Max, DefaultMax)
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.clock = coalesce[Clock](opts.Clock, wallClock{})

	ttl := coalesce[time.Duration](opts.TTL, DefaultTTL)
	if ttl < 0 {
		ttl = 0
	}
	c.ttlMs = ttl.Milliseconds()

	return c, nil
}

func (c *cache[K, V]) now() int64 { return c.clock.Now().UnixMilli() }

func (c *cache[K, V]) Get(key K) (V, bool) {
	var zero V

	e, ok := c.active[key]
	fromPrevious := false
	if !ok {
		if e, ok = c.previous[key]; !ok {
			c.misses++
			return zero, false
		}
		fromPrevious = true
	}

	if c.now()-e.storedAt >= c.ttlMs {
		if fromPrevious {
			// previous entries are not counted in size
			delete(c.previous, key)
			c.hooks.Expired(GenPrevious)
		} else {
			delete(c.active, key)
			c.size--
			c.hooks.Expired(GenActive)
		}
		c.expired++
		c.misses++
		return zero, false
	}

	if fromPrevious {
		delete(c.previous, key)
		c.promotions++
		c.hooks.Promoted()
		c.Set(key, e.val)
	}
	c.hits++
	return e.val, true
}

func (c *cache[K, V]) Set(key K, value V) {
	e := entry[V]{val: value, storedAt: c.now()}

	if _, ok := c.active[key]; ok {
		c.active[key] = e
		return
	}

	c.active[key] = e
	c.size++
	if c.size >= c.max {
		c.rotate()
	}
}

// rotate drops previous and demotes active in its place.
func (c *cache[K, V]) rotate() {
	discarded := len(c.previous)
	c.previous = c.active
	c.active = make(map[K]entry[V])
	c.size = 0
	c.rotations++

	c.hooks.Rotated(discarded)
	c.log.Debug("rotated generation", Fields{"demoted": len(c.previous), "discarded": discarded})
}

func (c *cache[K, V]) Delete(key K) bool {
	_, inActive := c.active[key]
	if inActive {
		delete(c.active, key)
		c.size--
	}
	_, inPrevious := c.previous[key]
	if inPrevious {
		delete(c.previous, key)
	}
	return inActive || inPrevious
}

func (c *cache[K, V]) Clear() {
	dropped := len(c.active) + len(c.previous)
	c.active = make(map[K]entry[V])
	c.previous = make(map[K]entry[V])
	c.size = 0

	c.hooks.Cleared(dropped)
	c.log.Debug("cleared cache", Fields{"dropped": dropped})
}

func (c *cache[K, V]) Stats() Stats {
	return Stats{
		Hits:       c.hits,
		Misses:     c.misses,
		Expired:    c.expired,
		Promotions: c.promotions,
		Rotations:  c.rotations,
		Active:     c.size,
		Previous:   len(c.previous),
	}
}
