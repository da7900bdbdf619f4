package pwgen

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"math/big"

	"golang.org/x/crypto/chacha20"
)

// RandomSource supplies every random draw made while generating passwords.
// Implementations must return uniformly distributed values.
type RandomSource interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Pick returns a uniformly chosen byte of set.
	Pick(set string) byte
	// Shuffle uniformly permutes b in place.
	Shuffle(b []byte)
}

// shuffle is a Fisher-Yates shuffle driven by src.
func shuffle(src RandomSource, b []byte) {
	for i := len(b) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		b[i], b[j] = b[j], b[i]
	}
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct{}

// Intn implements RandomSource.
func (CryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("pwgen: invalid argument to Intn")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		panic("crypto/rand failed: " + err.Error())
	}
	return int(v.Int64())
}

// Pick implements RandomSource.
func (s CryptoSource) Pick(set string) byte {
	return set[s.Intn(len(set))]
}

// Shuffle implements RandomSource.
func (s CryptoSource) Shuffle(b []byte) {
	shuffle(s, b)
}

// SeededSource is a deterministic RandomSource backed by a ChaCha20
// keystream keyed from a seed. Two sources with the same seed produce the
// same sequence of draws. It is not safe for concurrent use and must not be
// used for real credentials.
type SeededSource struct {
	stream *chacha20.Cipher
	buf    [8]byte
}

// NewSeededSource returns a SeededSource for seed.
func NewSeededSource(seed uint64) *SeededSource {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// key and nonce sizes are fixed above
		panic(err)
	}
	return &SeededSource{stream: stream}
}

func (s *SeededSource) next() uint64 {
	s.buf = [8]byte{}
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Intn implements RandomSource. Values above the largest multiple of n are
// rejected so that the result is unbiased.
func (s *SeededSource) Intn(n int) int {
	if n <= 0 {
		panic("pwgen: invalid argument to Intn")
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		if v := s.next(); v < limit {
			return int(v % bound)
		}
	}
}

// Pick implements RandomSource.
func (s *SeededSource) Pick(set string) byte {
	return set[s.Intn(len(set))]
}

// Shuffle implements RandomSource.
func (s *SeededSource) Shuffle(b []byte) {
	shuffle(s, b)
}
