package gencache

import (
	"errors"
	"testing"

	c "github.com/unkn0wn-root/gencache/codec"
)

type user struct {
	ID    string   `json:"id" msgpack:"id"`
	Name  string   `json:"name" msgpack:"name"`
	Roles []string `json:"roles" msgpack:"roles"`
}

type decodeHooks struct {
	NopHooks
	errs []error
}

func (h *decodeHooks) DecodeFailed(err error) { h.errs = append(h.errs, err) }

type recordingLogger struct {
	NopLogger
	warns []string
}

func (l *recordingLogger) Warn(msg string, _ Fields) { l.warns = append(l.warns, msg) }

func newEncoded[V any](t *testing.T, codec c.Codec[V], opts EncodedOptions) (*Encoded[string, V], Cache[string, []byte]) {
	t.Helper()
	inner, err := New[string, []byte](Options{Max: 16})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	enc, err := NewEncoded[string, V](inner, codec, opts)
	if err != nil {
		t.Fatalf("NewEncoded: %v", err)
	}
	return enc, inner
}

func TestEncodedRoundTripIsolatesValues(t *testing.T) {
	codecs := map[string]c.Codec[user]{
		"json":    c.JSON[user]{},
		"msgpack": c.Msgpack[user]{},
		"cbor":    c.MustCBOR[user](true),
	}
	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			enc, _ := newEncoded[user](t, codec, EncodedOptions{})

			u := user{ID: "1", Name: "Ada", Roles: []string{"admin"}}
			if err := enc.Set("u:1", u); err != nil {
				t.Fatalf("Set: %v", err)
			}
			u.Roles[0] = "mutated"

			got, ok := enc.Get("u:1")
			if !ok || got.Name != "Ada" || len(got.Roles) != 1 || got.Roles[0] != "admin" {
				t.Fatalf("Get: ok=%v got=%+v", ok, got)
			}

			got.Roles[0] = "also-mutated"
			again, _ := enc.Get("u:1")
			if again.Roles[0] != "admin" {
				t.Fatalf("cached value shared memory with a reader: %+v", again)
			}
		})
	}
}

func TestEncodedSelfHealsUndecodable(t *testing.T) {
	hooks := &decodeHooks{}
	log := &recordingLogger{}
	enc, inner := newEncoded[user](t, c.JSON[user]{}, EncodedOptions{Logger: log, Hooks: hooks})

	inner.Set("bad", []byte("{not json"))

	if _, ok := enc.Get("bad"); ok {
		t.Fatal("undecodable payload should read as absent")
	}
	if _, ok := inner.Get("bad"); ok {
		t.Fatal("undecodable payload should be deleted")
	}
	if len(hooks.errs) != 1 {
		t.Fatalf("DecodeFailed calls=%d want 1", len(hooks.errs))
	}
	if len(log.warns) != 1 {
		t.Fatalf("warn logs=%v", log.warns)
	}
}

func TestEncodedLimitCodec(t *testing.T) {
	codec := c.LimitCodec[string]{Inner: c.String{}, MaxEncode: 4, MaxDecode: 4}
	enc, inner := newEncoded[string](t, codec, EncodedOptions{})

	if err := enc.Set("k", "toolong"); !errors.Is(err, c.ErrTooLarge) {
		t.Fatalf("Set oversized: err=%v", err)
	}
	if _, ok := inner.Get("k"); ok {
		t.Fatal("oversized value must not be stored")
	}

	inner.Set("k", []byte("12345"))
	if _, ok := enc.Get("k"); ok {
		t.Fatal("oversized payload should fail decode")
	}

	if err := enc.Set("k", "ok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok := enc.Get("k"); !ok || v != "ok" {
		t.Fatalf("Get: v=%q ok=%v", v, ok)
	}
}

func TestEncodedDelegates(t *testing.T) {
	enc, inner := newEncoded[string](t, c.String{}, EncodedOptions{})

	_ = enc.Set("a", "1")
	_ = enc.Set("b", "2")
	if s := enc.Stats(); s.Active != 2 {
		t.Fatalf("stats=%+v", s)
	}
	if !enc.Delete("a") {
		t.Fatal("Delete a")
	}
	enc.Clear()
	if _, ok := inner.Get("b"); ok {
		t.Fatal("Clear should reach inner cache")
	}
}

func TestNewEncodedRequiresInnerAndCodec(t *testing.T) {
	if _, err := NewEncoded[string, string](nil, c.String{}, EncodedOptions{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("nil inner: err=%v", err)
	}
	inner, _ := New[string, []byte](Options{})
	if _, err := NewEncoded[string, string](inner, nil, EncodedOptions{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("nil codec: err=%v", err)
	}
}
