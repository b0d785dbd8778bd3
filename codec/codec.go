// Package codec provides the Codec implementations used by gencache.Encoded.
//
// A codec turns V into the []byte a byte cache holds and back. Decode must
// return a value that shares no memory with the input slice, otherwise two
// readers of the same entry could observe each other's writes.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
