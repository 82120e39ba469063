package core

import (
	"sort"

	"github.com/lmarsden/fullback/schema"
)

// OverallScore computes the weighted linear blend of score columns. A weight
// whose column is absent contributes zero for every row; no normalization or
// clipping is applied, so callers pick weights that keep the scale sane.
// Weight keys are visited in sorted order for deterministic float summation.
func OverallScore(t *schema.Table, weights map[string]float64) []float64 {
	out := make([]float64, t.Len())

	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, name := range keys {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		w := weights[name]
		values := CoerceNumeric(col)
		for i, v := range values {
			out[i] += w * v
		}
	}
	return out
}

// ApplyBonuses computes the additive scouting bonus per row: an age bonus
// when the player falls inside the inclusive age window and a playing-time
// bonus when minutes meet the threshold. Missing or unparseable age and
// minutes fail their condition silently and contribute nothing.
func ApplyBonuses(t *schema.Table, p schema.BonusParams) []float64 {
	ages := coerceColumn(t, p.AgeColumn)
	mins := coerceColumn(t, p.MinutesColumn)

	out := make([]float64, t.Len())
	for i := range out {
		b := 0.0
		if ages[i] >= p.AgeMin && ages[i] <= p.AgeMax {
			b += p.AgeBonus
		}
		if mins[i] >= p.MinMinutes {
			b += p.MinutesBonus
		}
		out[i] = b
	}
	return out
}
