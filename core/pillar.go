package core

import (
	"github.com/lmarsden/fullback/schema"
)

// PillarScore aggregates the listed metrics into one composite score per row:
// the row-wise mean of their standardized columns, with missing values
// excluded from the mean rather than counted as zero. Metric names resolve to
// their standardized variant unless they already are one.
//
// Rows where every input is missing get 0.0, and if none of the requested
// metrics resolves to a present column the score is 0.0 for every row, so a
// pillar never emits an undefined value.
func PillarScore(t *schema.Table, metrics []string) []float64 {
	columns := make([][]float64, 0, len(metrics))
	for _, name := range metrics {
		m := schema.ParseMetric(name).StandardizedVariant()
		col, ok := t.Column(m.Column())
		if !ok {
			continue
		}
		columns = append(columns, CoerceNumeric(col))
	}

	out := make([]float64, t.Len())
	if len(columns) == 0 {
		return out
	}

	for i := range out {
		sum := 0.0
		n := 0
		for _, col := range columns {
			v := col[i]
			if isMissing(v) {
				continue
			}
			sum += v
			n++
		}
		if n > 0 {
			out[i] = sum / float64(n)
		}
	}
	return out
}
