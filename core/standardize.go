package core

import (
	"math"

	"github.com/lmarsden/fullback/schema"
)

// StandardizeByGroup adds a clipped z-score column (`<metric>_z`) for each
// listed metric, standardized within the peer groups formed by groupColumn.
// Rows with a missing group key form their own group; if the group column is
// absent the whole population is one implicit group. Columns are coerced
// internally, so mixed-type input does not break the statistics.
//
// Degenerate groups (zero or non-finite standard deviation, or fewer than
// two finite observations) get a z-score of exactly 0.0 for every finite
// input, keeping undefined values out of downstream aggregation. A missing
// input stays missing.
func StandardizeByGroup(t *schema.Table, metrics []string, groupColumn string, clip float64) {
	if groupColumn == "" {
		groupColumn = schema.LeagueColumn
	}
	if clip <= 0 {
		clip = schema.DefaultClip
	}

	groups := t.GroupIndices(groupColumn)

	for _, name := range metrics {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		values := CoerceNumeric(col)

		scores := make([]float64, len(values))
		for i := range scores {
			scores[i] = math.NaN()
		}

		for _, rows := range groups {
			group := make([]float64, 0, len(rows))
			for _, i := range rows {
				group = append(group, values[i])
			}
			sum := schema.Describe(group)
			degenerate := sum.Count < 2 || sum.Std == 0 || isMissing(sum.Std)

			for _, i := range rows {
				v := values[i]
				if isMissing(v) {
					continue
				}
				if degenerate {
					scores[i] = 0.0
					continue
				}
				scores[i] = clampAbs((v-sum.Mean)/sum.Std, clip)
			}
		}

		standardized := schema.ParseMetric(name).StandardizedVariant()
		_ = t.SetColumn(schema.NewNumericSeries(standardized.Column(), scores))
	}
}
