package schema

import "strings"

// Column name suffixes for derived metric variants. These are a
// serialization-boundary concern only; pipeline code works with Metric values
// and never does suffix arithmetic on raw strings.
const (
	perNinetySuffix    = " per90"
	standardizedSuffix = "_z"
)

// Metric identifies a dataset metric together with its derivation variant.
// "Completed Crosses" raw, its per-90 rate, and the standardized z-score of
// that rate are three distinct Metric values sharing one base name.
type Metric struct {
	Base         string // Raw column name, e.g. "Completed Crosses"
	PerNinety    bool   // Rescaled to a 90-minute basis
	Standardized bool   // Group-relative clipped z-score
}

// RawMetric returns the raw variant of a named metric.
func RawMetric(name string) Metric {
	return Metric{Base: name}
}

// ParseMetric resolves a column name to a Metric, recognizing the variant
// suffixes. "Completed Crosses per90_z" parses to the standardized per-90
// variant of "Completed Crosses".
func ParseMetric(column string) Metric {
	m := Metric{}
	if strings.HasSuffix(column, standardizedSuffix) {
		m.Standardized = true
		column = strings.TrimSuffix(column, standardizedSuffix)
	}
	if strings.HasSuffix(column, perNinetySuffix) {
		m.PerNinety = true
		column = strings.TrimSuffix(column, perNinetySuffix)
	}
	m.Base = column
	return m
}

// CarriesPerNinetyMarker reports whether a raw column name already carries a
// per-90 marker in any spelling ("X per90" or "Xper90"). Such columns are
// never re-derived by the per-90 normalizer.
func CarriesPerNinetyMarker(column string) bool {
	return strings.HasSuffix(column, "per90")
}

// Column renders the table column name for this metric variant.
func (m Metric) Column() string {
	name := m.Base
	if m.PerNinety {
		name += perNinetySuffix
	}
	if m.Standardized {
		name += standardizedSuffix
	}
	return name
}

// PerNinetyVariant returns the per-90 variant of this metric. Metrics that
// are already per-90 are returned unchanged, so a rate is never re-derived.
func (m Metric) PerNinetyVariant() Metric {
	m.PerNinety = true
	return m
}

// StandardizedVariant returns the standardized variant of this metric.
func (m Metric) StandardizedVariant() Metric {
	m.Standardized = true
	return m
}
