package gencache

import (
	"fmt"

	c "github.com/unkn0wn-root/gencache/codec"
)

// EncodedOptions wire logging and hooks for Encoded. Both default to no-ops.
type EncodedOptions struct {
	Logger Logger
	Hooks  Hooks
}

// Encoded stores values of type V in a byte cache through a Codec[V].
// Every Get decodes a fresh copy, so callers can mutate what they read (or what
// they stored) without reaching into the cache.
type Encoded[K comparable, V any] struct {
	inner Cache[K, []byte]
	codec c.Codec[V]
	log   Logger
	hooks Hooks
}

func NewEncoded[K comparable, V any](inner Cache[K, []byte], codec c.Codec[V], opts EncodedOptions) (*Encoded[K, V], error) {
	if inner == nil {
		return nil, &ConfigError{Field: "inner", Value: nil, Reason: "cache is required"}
	}
	if codec == nil {
		return nil, &ConfigError{Field: "codec", Value: nil, Reason: "codec is required"}
	}
	return &Encoded[K, V]{
		inner: inner,
		codec: codec,
		log:   coalesce[Logger](opts.Logger, NopLogger{}),
		hooks: coalesce[Hooks](opts.Hooks, NopHooks{}),
	}, nil
}

// Get decodes the cached payload. A payload that fails to decode is deleted
// and reported as a miss.
func (e *Encoded[K, V]) Get(key K) (V, bool) {
	var zero V
	raw, ok := e.inner.Get(key)
	if !ok {
		return zero, false
	}
	v, err := e.codec.Decode(raw)
	if err != nil {
		e.inner.Delete(key) // self-heal
		e.hooks.DecodeFailed(err)
		e.log.Warn("dropped undecodable entry", Fields{"key": key, "size": len(raw), "err": err})
		return zero, false
	}
	return v, true
}

// Set encodes value and stores it. Nothing is written if encoding fails.
func (e *Encoded[K, V]) Set(key K, value V) error {
	raw, err := e.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("gencache: encode %v: %w", key, err)
	}
	e.inner.Set(key, raw)
	return nil
}

func (e *Encoded[K, V]) Delete(key K) bool { return e.inner.Delete(key) }
func (e *Encoded[K, V]) Clear()            { e.inner.Clear() }
func (e *Encoded[K, V]) Stats() Stats      { return e.inner.Stats() }
