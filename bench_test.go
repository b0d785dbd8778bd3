package gencache

import (
	"strconv"
	"testing"

	"github.com/allegro/bigcache/v3"
	"github.com/dgraph-io/ristretto"
)

const benchKeys = 4096

func benchKeySet() []string {
	keys := make([]string, benchKeys)
	for i := range keys {
		keys[i] = "key:" + strconv.Itoa(i)
	}
	return keys
}

// 3 reads per write over a key space twice the capacity.
func BenchmarkGencacheMixed(b *testing.B) {
	keys := benchKeySet()
	cc, err := New[string, []byte](Options{Max: benchKeys / 2})
	if err != nil {
		b.Fatal(err)
	}
	val := []byte("value")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%benchKeys]
		if i%4 == 0 {
			cc.Set(k, val)
			continue
		}
		cc.Get(k)
	}
}

func BenchmarkRistrettoMixed(b *testing.B) {
	keys := benchKeySet()
	rc, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: benchKeys * 10,
		MaxCost:     benchKeys / 2,
		BufferItems: 64,
	})
	if err != nil {
		b.Fatal(err)
	}
	defer rc.Close()
	val := []byte("value")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%benchKeys]
		if i%4 == 0 {
			rc.Set(k, val, 1)
			continue
		}
		rc.Get(k)
	}
}

func BenchmarkBigcacheMixed(b *testing.B) {
	keys := benchKeySet()
	conf := bigcache.DefaultConfig(DefaultTTL)
	conf.Verbose = false
	conf.MaxEntriesInWindow = benchKeys
	bc, err := bigcache.NewBigCache(conf)
	if err != nil {
		b.Fatal(err)
	}
	defer bc.Close()
	val := []byte("value")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%benchKeys]
		if i%4 == 0 {
			_ = bc.Set(k, val)
			continue
		}
		_, _ = bc.Get(k)
	}
}
