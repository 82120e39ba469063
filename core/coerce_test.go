package core

import (
	"math"
	"testing"

	"github.com/lmarsden/fullback/schema"
	"github.com/stretchr/testify/assert"
)

// TestCoerceValue covers the permissive numeric coercion rules.
func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{name: "plain integer", raw: "42", expected: 42},
		{name: "plain float", raw: "3.14", expected: 3.14},
		{name: "comma grouping", raw: "1,234", expected: 1234},
		{name: "percent suffix", raw: "87.5%", expected: 87.5},
		{name: "grouping and percent", raw: "1,234%", expected: 1234},
		{name: "currency noise", raw: "€3.5", expected: 3.5},
		{name: "negative", raw: "-0.4", expected: -0.4},
		{name: "scientific notation", raw: "1.2e3", expected: 1200},
		{name: "leading plus", raw: "+7", expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CoerceValue(tt.raw), 0.0001)
		})
	}
}

// TestCoerceValueMissing covers inputs that must become the missing sentinel.
func TestCoerceValueMissing(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "dash placeholder", raw: "-"},
		{name: "em dash", raw: "—"},
		{name: "words only", raw: "n/a"},
		{name: "bare sign and point", raw: "+."},
		{name: "double sign", raw: "--5-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, math.IsNaN(CoerceValue(tt.raw)), "expected NaN for %q", tt.raw)
		})
	}
}

// TestCoerceNumeric verifies both column kinds coerce correctly.
func TestCoerceNumeric(t *testing.T) {
	text := schema.NewTextSeries("mixed", []string{"10", "1,5", "", "bad"})
	got := CoerceNumeric(text)
	assert.Equal(t, 10.0, got[0])
	assert.Equal(t, 15.0, got[1])
	assert.True(t, math.IsNaN(got[2]))
	assert.True(t, math.IsNaN(got[3]))

	numeric := schema.NewNumericSeries("nums", []float64{1, math.NaN(), 3})
	got = CoerceNumeric(numeric)
	assert.Equal(t, 1.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 3.0, got[2])

	// Returned slice must be a copy, not an alias
	got[0] = 99
	assert.Equal(t, 1.0, numeric.Values[0])
}

// TestClampHelpers verifies the clip helpers pass NaN through untouched.
func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 3.0, clampAbs(5, 3))
	assert.Equal(t, -3.0, clampAbs(-5, 3))
	assert.Equal(t, 1.5, clampAbs(1.5, 3))
	assert.True(t, math.IsNaN(clampAbs(math.NaN(), 3)))

	assert.Equal(t, 1.0, clamp01(1.2))
	assert.Equal(t, 0.0, clamp01(-0.2))
	assert.Equal(t, 0.5, clamp01(0.5))
	assert.True(t, math.IsNaN(clamp01(math.NaN())))
}
