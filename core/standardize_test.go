package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStandardizeByGroup verifies league-relative z-scores with clipping.
func TestStandardizeByGroup(t *testing.T) {
	tbl := buildTable(t, map[string][]string{
		"League": {"A", "A", "A", "B", "B"},
		"Metric": {"1", "2", "3", "10", "20"},
	})

	StandardizeByGroup(tbl, []string{"Metric"}, "League", 3.0)

	col, ok := tbl.Column("Metric_z")
	require.True(t, ok)

	// Group A: mean 2, population std sqrt(2/3)
	stdA := math.Sqrt(2.0 / 3.0)
	assert.InDelta(t, -1/stdA, col.Values[0], 0.0001)
	assert.InDelta(t, 0.0, col.Values[1], 0.0001)
	assert.InDelta(t, 1/stdA, col.Values[2], 0.0001)

	// Group B: mean 15, population std 5
	assert.InDelta(t, -1.0, col.Values[3], 0.0001)
	assert.InDelta(t, 1.0, col.Values[4], 0.0001)
}

// TestStandardizeClipping verifies outliers are clamped to the bound.
func TestStandardizeClipping(t *testing.T) {
	tbl := buildTable(t, map[string][]string{
		"League": {"A", "A", "A", "A", "A", "A", "A", "A", "A", "A"},
		"Metric": {"1", "1", "1", "1", "1", "1", "1", "1", "1", "100"},
	})

	StandardizeByGroup(tbl, []string{"Metric"}, "League", 2.0)

	col, ok := tbl.Column("Metric_z")
	require.True(t, ok)
	assert.Equal(t, 2.0, col.Values[9], "outlier must be clipped to the bound")
	for i := 0; i < 9; i++ {
		assert.GreaterOrEqual(t, col.Values[i], -2.0)
	}
}

// TestStandardizeDegenerateGroup verifies the zero-variance rule: finite
// inputs score exactly 0.0 and missing inputs stay missing.
func TestStandardizeDegenerateGroup(t *testing.T) {
	tbl := buildTable(t, map[string][]string{
		"League": {"A", "A", "A", "B"},
		"Metric": {"5", "5", "", "7"},
	})

	StandardizeByGroup(tbl, []string{"Metric"}, "League", 3.0)

	col, ok := tbl.Column("Metric_z")
	require.True(t, ok)
	assert.Equal(t, 0.0, col.Values[0])
	assert.Equal(t, 0.0, col.Values[1])
	assert.True(t, math.IsNaN(col.Values[2]), "missing input stays missing in a degenerate group")
	assert.Equal(t, 0.0, col.Values[3], "single-member group is degenerate")
}

// TestStandardizeMissingGroupColumn verifies the whole population forms one
// implicit group when the group column is absent.
func TestStandardizeMissingGroupColumn(t *testing.T) {
	tbl := buildTable(t, map[string][]string{
		"Metric": {"10", "20"},
	})

	StandardizeByGroup(tbl, []string{"Metric"}, "League", 3.0)

	col, ok := tbl.Column("Metric_z")
	require.True(t, ok)
	assert.InDelta(t, -1.0, col.Values[0], 0.0001)
	assert.InDelta(t, 1.0, col.Values[1], 0.0001)
}

// TestStandardizeMissingRowsExcluded verifies missing values are excluded
// from the group statistics rather than treated as zero.
func TestStandardizeMissingRowsExcluded(t *testing.T) {
	tbl := buildTable(t, map[string][]string{
		"League": {"A", "A", "A"},
		"Metric": {"10", "20", "—"},
	})

	StandardizeByGroup(tbl, []string{"Metric"}, "League", 3.0)

	col, ok := tbl.Column("Metric_z")
	require.True(t, ok)
	// Stats come from {10, 20} only: mean 15, std 5
	assert.InDelta(t, -1.0, col.Values[0], 0.0001)
	assert.InDelta(t, 1.0, col.Values[1], 0.0001)
	assert.True(t, math.IsNaN(col.Values[2]))
}
