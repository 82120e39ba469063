package core

import (
	"math"
	"testing"
	"time"

	"github.com/lmarsden/fullback/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsToExpiry(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cell string
		want float64
	}{
		{"one year out", "Jun-25", 12},
		{"same month", "Jun-24", 0},
		{"past floors at zero", "Jan-23", 0},
		{"later this year", "Dec-24", 6},
		{"trims whitespace", " Jun-26 ", 24},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MonthsToExpiry(tc.cell, now))
		})
	}
}

func TestMonthsToExpiryUnparseable(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	for _, cell := range []string{"", "—", "June 2025", "2025-06"} {
		assert.True(t, math.IsNaN(MonthsToExpiry(cell, now)), "cell %q", cell)
	}
}

func TestInvertNorm01(t *testing.T) {
	out := invertNorm01([]float64{0, 5, 10})
	assert.InDelta(t, 1.0, out[0], 0.0001, "smallest inverts to 1")
	assert.InDelta(t, 0.5, out[1], 0.0001)
	assert.InDelta(t, 0.0, out[2], 0.0001, "largest inverts to 0")

	out = invertNorm01([]float64{3, math.NaN(), 7})
	assert.InDelta(t, 1.0, out[0], 0.0001)
	assert.True(t, math.IsNaN(out[1]), "missing stays missing")
	assert.InDelta(t, 0.0, out[2], 0.0001)
}

func TestInvertNorm01Degenerate(t *testing.T) {
	t.Run("no spread", func(t *testing.T) {
		out := invertNorm01([]float64{4, 4, 4})
		assert.Equal(t, []float64{0.5, 0.5, 0.5}, out)
	})
	t.Run("nothing finite", func(t *testing.T) {
		out := invertNorm01([]float64{math.NaN(), math.NaN()})
		assert.Equal(t, []float64{0.5, 0.5}, out)
	})
}

func TestFeasibility(t *testing.T) {
	tbl := buildTable(t, map[string][]string{
		schema.MarketValueColumn: {"1,000,000", "50,000,000", "10,000,000"},
		schema.ContractEndColumn: {"Jun-25", "Jun-28", "Jun-26"},
		schema.EligibilityColumn: {"Yes", "No", "yes"},
	})

	params := schema.DefaultFeasibilityParams()
	params.Now = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	out := Feasibility(tbl, params)

	require.Len(t, out, 3)
	for i, v := range out {
		assert.GreaterOrEqual(t, v, 0.0, "row %d", i)
		assert.LessOrEqual(t, v, 1.0, "row %d", i)
	}

	// Cheaper, shorter contract, eligible: the most attainable target.
	assert.Greater(t, out[0], out[1])
	assert.Greater(t, out[0], out[2])
}

func TestFeasibilityAbsentColumns(t *testing.T) {
	// With no value, contract or eligibility columns the sub-scores are 0.5,
	// 1.0 and 1.0 respectively under default weights.
	tbl := buildTable(t, map[string][]string{"Player": {"A", "B"}})

	out := Feasibility(tbl, schema.DefaultFeasibilityParams())
	want := 0.6*0.5 + 0.3*1.0 + 0.1*1.0
	assert.InDelta(t, want, out[0], 0.0001)
	assert.InDelta(t, want, out[1], 0.0001)
}

func TestFeasibilityPartialWeightOverride(t *testing.T) {
	tbl := buildTable(t, map[string][]string{"Player": {"A"}})

	params := schema.DefaultFeasibilityParams()
	params.Weights = map[schema.FeasibilityKey]float64{
		schema.ValueFeasibility: 1.0,
	}
	out := Feasibility(tbl, params)

	// Missing weight keys fall back to defaults, not zero.
	want := clamp01(1.0*0.5 + 0.3*1.0 + 0.1*1.0)
	assert.InDelta(t, want, out[0], 0.0001)
}

func TestEligibilityFeasibility(t *testing.T) {
	tbl := buildTable(t, map[string][]string{
		schema.EligibilityColumn: {"Yes", " y ", "TRUE", "Eligible", "No", "", "maybe"},
	})

	out := eligibilityFeasibility(tbl, schema.EligibilityColumn)
	assert.Equal(t, []float64{1.0, 1.0, 1.0, 1.0, 0.7, 0.7, 0.7}, out)
}
