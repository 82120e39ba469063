package schema

import (
	"fmt"
	"math"
	"strconv"

	"github.com/montanaflynn/stats"
)

// Series is a single named column of a Table. A column is either text
// (cells exactly as loaded from the source) or numeric (float64 values with
// NaN as the missing sentinel). Derived columns produced by the pipeline are
// always numeric.
type Series struct {
	Name   string
	Kind   ColumnKind
	Text   []string  // Populated when Kind is TextColumn
	Values []float64 // Populated when Kind is NumericColumn
}

// NewTextSeries creates a text column from raw cells.
func NewTextSeries(name string, cells []string) *Series {
	return &Series{Name: name, Kind: TextColumn, Text: cells}
}

// NewNumericSeries creates a numeric column. NaN marks missing values.
func NewNumericSeries(name string, values []float64) *Series {
	return &Series{Name: name, Kind: NumericColumn, Values: values}
}

// Len returns the number of rows in the series.
func (s *Series) Len() int {
	if s.Kind == NumericColumn {
		return len(s.Values)
	}
	return len(s.Text)
}

// Cell returns the raw textual content of row i. Numeric values are rendered
// with strconv; missing numeric values render as the empty string.
func (s *Series) Cell(i int) string {
	if s.Kind == TextColumn {
		return s.Text[i]
	}
	v := s.Values[i]
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Table is an ordered collection of named columns with a fixed row count.
// Column names are free-form and matched exactly (case-sensitive); names like
// "% Passing" or "(€) Market Value" are valid keys. The pipeline only ever
// augments a table with derived columns; originals are never removed.
type Table struct {
	names []string
	cols  map[string]*Series
	rows  int
	typed bool // rows has been fixed by the first column
}

// NewTable creates an empty table. The row count is fixed by the first column
// added to it.
func NewTable() *Table {
	return &Table{cols: make(map[string]*Series)}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns the named column, if present.
func (t *Table) Column(name string) (*Series, bool) {
	s, ok := t.cols[name]
	return s, ok
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// SetColumn adds or replaces a column. The first column added fixes the row
// count; later columns must match it.
func (t *Table) SetColumn(s *Series) error {
	if !t.typed {
		t.rows = s.Len()
		t.typed = true
	} else if s.Len() != t.rows {
		return fmt.Errorf("column %q has %d rows, table has %d", s.Name, s.Len(), t.rows)
	}
	if _, exists := t.cols[s.Name]; !exists {
		t.names = append(t.names, s.Name)
	}
	t.cols[s.Name] = s
	return nil
}

// GroupIndices partitions row indices by the raw cell values of the named
// column. Rows with a missing group key land in their own bucket under the
// empty string, so they are standardized against each other rather than
// dropped. A missing column yields a single implicit group with every row.
func (t *Table) GroupIndices(name string) map[string][]int {
	groups := make(map[string][]int)
	col, ok := t.cols[name]
	if !ok {
		idx := make([]int, t.rows)
		for i := range idx {
			idx[i] = i
		}
		groups[""] = idx
		return groups
	}
	for i := 0; i < t.rows; i++ {
		key := col.Cell(i)
		groups[key] = append(groups[key], i)
	}
	return groups
}

// Summary holds descriptive statistics over the finite values of a column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64 // Population standard deviation
	Min    float64
	Max    float64
	Median float64
}

// Describe computes descriptive statistics over the finite entries of values.
// Every field except Count is NaN when there are no finite entries.
func Describe(values []float64) Summary {
	finite := FiniteValues(values)
	sum := Summary{
		Count:  len(finite),
		Mean:   math.NaN(),
		Std:    math.NaN(),
		Min:    math.NaN(),
		Max:    math.NaN(),
		Median: math.NaN(),
	}
	if len(finite) == 0 {
		return sum
	}
	if v, err := stats.Mean(finite); err == nil {
		sum.Mean = v
	}
	if v, err := stats.StandardDeviationPopulation(finite); err == nil {
		sum.Std = v
	}
	if v, err := stats.Min(finite); err == nil {
		sum.Min = v
	}
	if v, err := stats.Max(finite); err == nil {
		sum.Max = v
	}
	if v, err := stats.Median(finite); err == nil {
		sum.Median = v
	}
	return sum
}

// FiniteValues returns the finite entries of values, preserving order.
func FiniteValues(values []float64) []float64 {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	return finite
}
