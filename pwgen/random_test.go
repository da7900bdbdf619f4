package pwgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededSource_Reproducible(t *testing.T) {
	a, b := NewSeededSource(7), NewSeededSource(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSources_InRange(t *testing.T) {
	for _, src := range []RandomSource{CryptoSource{}, NewSeededSource(3)} {
		for n := 1; n < 50; n++ {
			v := src.Intn(n)
			assert.True(t, v >= 0 && v < n, "Intn(%v) returned %v", n, v)
		}
		assert.Panics(t, func() { src.Intn(0) })
	}
}

func TestSources_RoughlyUniform(t *testing.T) {
	const (
		buckets = 10
		draws   = 20000
	)
	for _, src := range []RandomSource{CryptoSource{}, NewSeededSource(11)} {
		var counts [buckets]int
		for i := 0; i < draws; i++ {
			counts[src.Intn(buckets)]++
		}
		for i, c := range counts {
			assert.InDelta(t, draws/buckets, c, draws/buckets/5, "bucket %v drew %v times", i, c)
		}
	}
}

func TestShuffle_Permutation(t *testing.T) {
	src := NewSeededSource(5)
	b := []byte("abcdefghij")
	src.Shuffle(b)
	assert.ElementsMatch(t, []byte("abcdefghij"), b)
	assert.NotEqual(t, "abcdefghij", string(b))
}
