package pwgen

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultMaxBits is the entropy at which the strength bar is full.
	DefaultMaxBits = 100
	// BarWidth is the number of segments in a rendered strength bar.
	BarWidth = 20
)

// Rating is an ordinal strength label derived from entropy bits.
type Rating int

const (
	// Weak is below 40 bits.
	Weak Rating = iota
	// Moderate is from 40 up to 60 bits.
	Moderate
	// Strong is from 60 up to 80 bits.
	Strong
	// VeryStrong is 80 bits or more.
	VeryStrong
)

func (r Rating) String() string {
	switch r {
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	}
	return "unknown"
}

// Bits returns the entropy in bits of a password of the given length drawn
// uniformly from poolSize characters.
func Bits(poolSize, length int) float64 {
	if poolSize <= 1 || length <= 0 {
		return 0.0
	}
	return float64(length) * math.Log2(float64(poolSize))
}

// Rate maps entropy bits to a Rating. Each band includes its lower bound.
func Rate(bits float64) Rating {
	switch {
	case bits < 40:
		return Weak
	case bits < 60:
		return Moderate
	case bits < 80:
		return Strong
	default:
		return VeryStrong
	}
}

// RenderBar draws bits/maxBits as a BarWidth wide bar of filled and empty
// segments. A non-positive maxBits falls back to DefaultMaxBits.
func RenderBar(bits, maxBits float64) string {
	if maxBits <= 0 {
		maxBits = DefaultMaxBits
	}
	ratio := math.Max(0, math.Min(1, bits/maxBits))
	filled := int(math.Floor(ratio * BarWidth))
	return strings.Repeat("█", filled) + strings.Repeat("░", BarWidth-filled)
}

// Report is a strength estimate. It depends only on the alphabet size and
// length, never on the generated characters.
type Report struct {
	PoolSize int
	Length   int
	Bits     float64
	Rating   Rating
	Bar      string
}

// Estimate builds the Report for a password policy.
func Estimate(poolSize, length int) Report {
	bits := Bits(poolSize, length)
	return Report{
		PoolSize: poolSize,
		Length:   length,
		Bits:     bits,
		Rating:   Rate(bits),
		Bar:      RenderBar(bits, DefaultMaxBits),
	}
}

// Summary renders the report for display.
func (r Report) Summary() string {
	return fmt.Sprintf("Strength (estimate): %v\nEntropy ≈ %.1f bits\n%v", r.Rating, r.Bits, r.Bar)
}
