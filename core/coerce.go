package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/lmarsden/fullback/schema"
)

// CoerceValue converts one raw cell to a float64. Every rune that is not a
// digit, sign, decimal point, or exponent marker is stripped before parsing,
// so "1,234%", "€3.5m" noise and comma grouping fall away. Unparseable input
// becomes NaN; this never fails.
func CoerceValue(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'e' || r == 'E' || r == '+' || r == '-' || r == '.':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// CoerceNumeric converts a column to numeric values with NaN as the missing
// sentinel. Numeric columns pass through untouched; text columns go through
// CoerceValue cell by cell.
func CoerceNumeric(s *schema.Series) []float64 {
	out := make([]float64, s.Len())
	if s.Kind == schema.NumericColumn {
		copy(out, s.Values)
		return out
	}
	for i, cell := range s.Text {
		out[i] = CoerceValue(cell)
	}
	return out
}

// coerceColumn coerces the named column, or returns all-NaN when the column
// is absent so downstream conditions fail silently per row.
func coerceColumn(t *schema.Table, name string) []float64 {
	if col, ok := t.Column(name); ok {
		return CoerceNumeric(col)
	}
	out := make([]float64, t.Len())
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// fillValues returns a slice of n copies of v.
func fillValues(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// clampAbs clips v to [-bound, bound]. NaN passes through.
func clampAbs(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}

// clamp01 clips v to [0, 1]. NaN passes through.
func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// isMissing reports whether v is the missing sentinel or otherwise unusable.
func isMissing(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
