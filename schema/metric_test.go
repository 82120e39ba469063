package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseMetric covers suffix recognition for every variant combination.
func TestParseMetric(t *testing.T) {
	tests := []struct {
		name   string
		column string
		want   Metric
	}{
		{
			name:   "raw metric",
			column: "Completed Crosses",
			want:   Metric{Base: "Completed Crosses"},
		},
		{
			name:   "per90 metric",
			column: "Completed Crosses per90",
			want:   Metric{Base: "Completed Crosses", PerNinety: true},
		},
		{
			name:   "standardized raw metric",
			column: "Tackles/Was Dribbled_z",
			want:   Metric{Base: "Tackles/Was Dribbled", Standardized: true},
		},
		{
			name:   "standardized per90 metric",
			column: "Completed Crosses per90_z",
			want:   Metric{Base: "Completed Crosses", PerNinety: true, Standardized: true},
		},
		{
			name:   "percent column",
			column: "% Passing",
			want:   Metric{Base: "% Passing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMetric(tt.column)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.column, got.Column(), "Column() should round-trip")
		})
	}
}

// TestMetricVariants ensures variant promotion is idempotent.
func TestMetricVariants(t *testing.T) {
	m := RawMetric("Goals")
	per90 := m.PerNinetyVariant()
	assert.Equal(t, "Goals per90", per90.Column())
	assert.Equal(t, per90, per90.PerNinetyVariant())

	z := per90.StandardizedVariant()
	assert.Equal(t, "Goals per90_z", z.Column())
	assert.Equal(t, z, z.StandardizedVariant())
}

// TestCarriesPerNinetyMarker recognizes both spellings of the marker.
func TestCarriesPerNinetyMarker(t *testing.T) {
	assert.True(t, CarriesPerNinetyMarker("Goals per90"))
	assert.True(t, CarriesPerNinetyMarker("xGper90"))
	assert.False(t, CarriesPerNinetyMarker("Goals"))
	assert.False(t, CarriesPerNinetyMarker("per90 Goals"))
}
