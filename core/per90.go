package core

import (
	"math"

	"github.com/lmarsden/fullback/schema"
)

// PerNinety adds a `<metric> per90` column for each listed counting metric,
// rescaling it to a 90-minute basis. Metrics absent from the table or already
// carrying a per-90 marker are skipped; originals are never touched.
//
// Minutes of exactly zero (or missing) are treated as missing rather than
// zero, so the derived rate is NaN instead of infinite.
func PerNinety(t *schema.Table, metrics []string, minutesColumn string) {
	if minutesColumn == "" {
		minutesColumn = schema.MinutesColumn
	}

	mins := coerceColumn(t, minutesColumn)
	factor := make([]float64, len(mins))
	for i, m := range mins {
		if math.IsNaN(m) {
			m = 0
		}
		if m == 0 {
			factor[i] = math.NaN()
		} else {
			factor[i] = m / 90.0
		}
	}

	for _, name := range metrics {
		if schema.CarriesPerNinetyMarker(name) {
			continue
		}
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		values := CoerceNumeric(col)
		derived := make([]float64, len(values))
		for i, v := range values {
			derived[i] = v / factor[i]
		}
		rate := schema.RawMetric(name).PerNinetyVariant()
		// Row counts always match the table here, so SetColumn cannot fail.
		_ = t.SetColumn(schema.NewNumericSeries(rate.Column(), derived))
	}
}
