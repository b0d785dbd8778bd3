package gencache

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits       uint64 // Get returned a value
	Misses     uint64 // Get returned nothing (unknown or expired)
	Expired    uint64 // entries dropped on read because of TTL
	Promotions uint64
	Rotations  uint64

	Active   int // entries in the active generation
	Previous int // entries in the previous generation, including shadowed duplicates
}
