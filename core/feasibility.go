package core

import (
	"math"
	"strings"
	"time"

	"github.com/lmarsden/fullback/schema"
)

// contractLayout parses month-year tokens like "Jun-25".
const contractLayout = "Jan-06"

// eligibleValues are the eligibility cells that score 1.0. Anything else
// scores the partial 0.7: a missing endorsement is a hurdle, not a veto.
var eligibleValues = map[string]struct{}{
	"yes":      {},
	"y":        {},
	"true":     {},
	"eligible": {},
}

// Feasibility scores how attainable each candidate is, independent of
// footballing merit: a weighted blend of market value, contract runway and
// eligibility sub-scores, clipped to [0,1].
func Feasibility(t *schema.Table, p schema.FeasibilityParams) []float64 {
	n := t.Len()

	feasValue := valueFeasibility(t, p.ValueColumn)
	feasContract := contractFeasibility(t, p.ContractColumn, p.Now)
	feasEligibility := eligibilityFeasibility(t, p.EligibilityColumn)

	defaults := schema.GetDefaultFeasibilityWeights()
	weightOf := func(key schema.FeasibilityKey) float64 {
		if w, ok := p.Weights[key]; ok {
			return w
		}
		return defaults[key]
	}
	wValue := weightOf(schema.ValueFeasibility)
	wContract := weightOf(schema.ContractFeasibility)
	wEligibility := weightOf(schema.EligibilityFeasibility)

	out := make([]float64, n)
	for i := range out {
		score := wValue*feasValue[i] + wContract*feasContract[i] + wEligibility*feasEligibility[i]
		out[i] = clamp01(score)
	}
	return out
}

// valueFeasibility maps market value to [0,1], cheaper targets scoring
// higher. Values are floored at zero before the log1p compression. When the
// population carries no signal (all equal or nothing finite) every row gets
// the neutral 0.5.
func valueFeasibility(t *schema.Table, column string) []float64 {
	values := coerceColumn(t, column)
	compressed := make([]float64, len(values))
	for i, v := range values {
		if !math.IsNaN(v) && v < 0 {
			v = 0
		}
		compressed[i] = math.Log1p(v)
	}
	return invertNorm01(compressed)
}

// contractFeasibility maps months of remaining contract to [0,1], shorter
// runway scoring higher. An absent contract column means no constraint: 1.0
// for every row.
func contractFeasibility(t *schema.Table, column string, now time.Time) []float64 {
	col, ok := t.Column(column)
	if !ok {
		return fillValues(t.Len(), 1.0)
	}
	if now.IsZero() {
		now = time.Now()
	}
	months := make([]float64, t.Len())
	for i := range months {
		months[i] = MonthsToExpiry(col.Cell(i), now)
	}
	return invertNorm01(months)
}

// eligibilityFeasibility scores the eligibility flag column. An absent
// column scores 1.0 for every row.
func eligibilityFeasibility(t *schema.Table, column string) []float64 {
	col, ok := t.Column(column)
	if !ok {
		return fillValues(t.Len(), 1.0)
	}
	out := make([]float64, t.Len())
	for i := range out {
		cell := strings.ToLower(strings.TrimSpace(col.Cell(i)))
		if _, eligible := eligibleValues[cell]; eligible {
			out[i] = 1.0
		} else {
			out[i] = 0.7
		}
	}
	return out
}

// MonthsToExpiry parses a contract-end token like "Jun-25" and returns whole
// months until expiry relative to now, floored at zero. Parsed years below
// 2000 are assumed to be 2000s-era two-digit years and get a century added.
// Unparseable input returns NaN.
func MonthsToExpiry(cell string, now time.Time) float64 {
	expiry, err := time.Parse(contractLayout, strings.TrimSpace(cell))
	if err != nil {
		return math.NaN()
	}
	year := expiry.Year()
	if year < 2000 {
		year += 100
	}
	months := (year-now.Year())*12 + int(expiry.Month()) - int(now.Month())
	if months < 0 {
		months = 0
	}
	return float64(months)
}

// invertNorm01 returns 1 − min-max-normalized(values). Missing entries stay
// missing; a degenerate population (no spread, or no finite entries at all)
// yields the neutral 0.5 for every row.
func invertNorm01(values []float64) []float64 {
	sum := schema.Describe(values)
	out := make([]float64, len(values))
	if sum.Count == 0 || isMissing(sum.Min) || isMissing(sum.Max) || sum.Max == sum.Min {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	span := sum.Max - sum.Min
	for i, v := range values {
		if isMissing(v) {
			out[i] = math.NaN()
			continue
		}
		out[i] = 1 - (v-sum.Min)/span
	}
	return out
}
