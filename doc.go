// Package gencache implements a bounded, TTL-aware key/value cache that
// approximates LRU with two generations instead of an access-ordered list.
//
// Components:
//   - active generation: map receiving every write.
//   - previous generation: read-only fallback, replaced wholesale on rotation.
//   - Codec[V] (optional, via Encoded): (de)serializes V <-> []byte so cached
//     values are detached from the caller's copies.
//
// Eviction:
//
//	Set(k, v)           // insert into active; count++
//	count >= Max        // rotate: previous = active, active = {}, count = 0
//	Get(k) in previous  // promote: move k back into active (may rotate again)
//
// Entries older than TTL are dropped lazily on Get, from whichever generation
// holds them. A key that is never read again survives at most two rotations.
//
// Set only looks at the active generation. If k still sits in previous, that
// copy stays there (shadowed by the active one) until its generation rotates
// out, Delete removes it, or Clear runs.
package gencache
