package gencache

import "time"

// Cache is a bounded two-generation cache with per-entry TTL.
// K is any comparable key type, V the caller's value type.
type Cache[K comparable, V any] interface {
	// Get returns the value for key. ok is false when the key is unknown or
	// expired. A hit in the previous generation promotes the entry.
	Get(key K) (v V, ok bool)
	// Set inserts or overwrites key in the active generation. May rotate.
	Set(key K, value V)
	// Delete removes key from both generations and reports whether it was present.
	Delete(key K) bool
	// Clear drops both generations.
	Clear()

	Stats() Stats
}

// Options tune the cache. The zero value is usable: Max=500, TTL=1h.
type Options struct {
	Max int           // active generation capacity; 0 => 500; < 0 rejected
	TTL time.Duration // entry lifetime; 0 => 1h; < 0 => entries expire immediately

	Logger         Logger // if nil, NopLogger is used
	Hooks          Hooks  // if nil, NopHooks is used
	Clock          Clock  // if nil, time.Now is used
	DisableLocking bool   // default false; true returns a single-owner cache with no mutex
}

func New[K comparable, V any](opts Options) (Cache[K, V], error) {
	c, err := newCache[K, V](opts)
	if err != nil {
		return nil, err
	}
	if opts.DisableLocking {
		return c, nil
	}
	return &lockedCache[K, V]{c: c}, nil
}
