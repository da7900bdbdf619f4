package pwgen

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	tests := []struct {
		poolSize int
		length   int
		expected float64
	}{
		{0, 10, 0},
		{1, 10, 0},
		{64, 0, 0},
		{64, -3, 0},
		{64, 10, 60},
		{2, 1, 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Bits(test.poolSize, test.length),
			"Bits(%v, %v)", test.poolSize, test.length)
	}
	assert.InDelta(t, 12*math.Log2(77), Bits(77, 12), 1e-9)
}

func TestRate(t *testing.T) {
	tests := []struct {
		bits     float64
		expected Rating
	}{
		{0, Weak},
		{39.9, Weak},
		{40.0, Moderate},
		{59.9, Moderate},
		{60.0, Strong},
		{79.99, Strong},
		{80.0, VeryStrong},
		{512, VeryStrong},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Rate(test.bits), "Rate(%v)", test.bits)
	}
	assert.Equal(t, "Very Strong", VeryStrong.String())
}

func TestRenderBar(t *testing.T) {
	tests := []struct {
		bits   float64
		filled int
	}{
		{-5, 0},
		{0, 0},
		{4.9, 0},
		{5, 1},
		{50, 10},
		{99.9, 19},
		{100, 20},
		{250, 20},
	}
	for _, test := range tests {
		bar := RenderBar(test.bits, DefaultMaxBits)
		assert.Equal(t, BarWidth, utf8.RuneCountInString(bar))
		assert.Equal(t, test.filled, strings.Count(bar, "█"), "RenderBar(%v)", test.bits)
	}
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("░", 10), RenderBar(20, 40))
	assert.Equal(t, RenderBar(50, DefaultMaxBits), RenderBar(50, 0))
}

func TestEstimate(t *testing.T) {
	r := Estimate(64, 10)
	assert.Equal(t, 64, r.PoolSize)
	assert.Equal(t, 10, r.Length)
	assert.Equal(t, 60.0, r.Bits)
	assert.Equal(t, Strong, r.Rating)
	assert.Equal(t, RenderBar(60, DefaultMaxBits), r.Bar)
	assert.Equal(t, "Strength (estimate): Strong\nEntropy ≈ 60.0 bits\n"+r.Bar, r.Summary())
}
