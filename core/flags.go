package core

import (
	"strings"

	"github.com/lmarsden/fullback/schema"
)

// Flag texts emitted by the generator.
const (
	FlagCrossVolume     = "High cross volume; low efficiency"
	FlagDefensiveOnly   = "Defensive profile; low progression"
	FlagProgressiveRisk = "Progressive; 1v1 risk"
	FlagLowMinutes      = "Low minutes"
)

// Flag thresholds on the standardized scale, plus the minutes floor.
const (
	tackleStrongZ    = 1.0
	carryWeakZ       = -1.0
	carryStrongZ     = 1.0
	dribbledWeakZ    = -0.5
	lowMinutesCutoff = 1200
)

// Columns read by the flag rules.
var (
	crossVolumeMetric = schema.Metric{Base: "Completed Crosses", PerNinety: true}
	crossEffMetric    = schema.RawMetric("Cross Efficiency")
	tackleZMetric     = schema.Metric{Base: "Successful Tackles", PerNinety: true, Standardized: true}
	carryZMetric      = schema.Metric{Base: "Progressive Carries", PerNinety: true, Standardized: true}
	dribbledZMetric   = schema.Metric{Base: "Tackles/Was Dribbled", Standardized: true}
)

// FlagContext holds the read-only inputs flag generation needs: coerced
// columns plus precomputed population medians. Each row is then a pure
// function of this context, with no cross-row state.
type FlagContext struct {
	rows int

	crossVolume []float64
	crossEff    []float64
	hasCrosses  bool

	crossVolumeMedian float64
	crossEffMedian    float64

	tackleZ   []float64
	carryZ    []float64
	dribbledZ []float64
	minutes   []float64
}

// NewFlagContext precomputes everything the per-row rules read. Standardized
// columns absent from the table default to zero for the comparisons; absent
// minutes default to zero, which triggers the low-minutes flag.
func NewFlagContext(t *schema.Table) *FlagContext {
	fc := &FlagContext{rows: t.Len()}

	crossCol, okVolume := t.Column(crossVolumeMetric.Column())
	effCol, okEff := t.Column(crossEffMetric.Column())
	fc.hasCrosses = okVolume && okEff
	if fc.hasCrosses {
		fc.crossVolume = CoerceNumeric(crossCol)
		fc.crossEff = CoerceNumeric(effCol)
		fc.crossVolumeMedian = schema.Describe(fc.crossVolume).Median
		fc.crossEffMedian = schema.Describe(fc.crossEff).Median
	}

	fc.tackleZ = columnOrFill(t, tackleZMetric.Column(), 0)
	fc.carryZ = columnOrFill(t, carryZMetric.Column(), 0)
	fc.dribbledZ = columnOrFill(t, dribbledZMetric.Column(), 0)
	fc.minutes = columnOrFill(t, schema.MinutesColumn, 0)

	return fc
}

// RowFlags returns the tags matched by row i, in rule order.
func (fc *FlagContext) RowFlags(i int) []string {
	var tags []string

	if fc.hasCrosses {
		volume, eff := fc.crossVolume[i], fc.crossEff[i]
		if !isMissing(volume) && !isMissing(eff) &&
			volume > fc.crossVolumeMedian && eff < fc.crossEffMedian {
			tags = append(tags, FlagCrossVolume)
		}
	}

	if fc.tackleZ[i] > tackleStrongZ && fc.carryZ[i] < carryWeakZ {
		tags = append(tags, FlagDefensiveOnly)
	}

	if fc.carryZ[i] > carryStrongZ && fc.dribbledZ[i] < dribbledWeakZ {
		tags = append(tags, FlagProgressiveRisk)
	}

	if fc.minutes[i] < lowMinutesCutoff {
		tags = append(tags, FlagLowMinutes)
	}

	return tags
}

// GenerateFlags emits the joined tag string for every row. Rows matching no
// rule get an empty string, never an error.
func GenerateFlags(t *schema.Table) []string {
	fc := NewFlagContext(t)
	out := make([]string, fc.rows)
	for i := range out {
		out[i] = strings.Join(fc.RowFlags(i), "; ")
	}
	return out
}

// columnOrFill returns the coerced column, or a constant default when the
// column is absent. Missing cells in a present column stay NaN, so threshold
// comparisons fail silently for them.
func columnOrFill(t *schema.Table, name string, def float64) []float64 {
	if col, ok := t.Column(name); ok {
		return CoerceNumeric(col)
	}
	return fillValues(t.Len(), def)
}
