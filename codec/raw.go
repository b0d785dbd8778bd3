package codec

// Bytes stores []byte values. Both directions copy, so the cached payload
// never aliases a slice the caller holds.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return clone(b), nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return clone(b), nil }

// String stores Go strings as their UTF-8 bytes, without validation.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
