// Package dataio loads tabular scouting datasets from disk.
package dataio

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lmarsden/fullback/schema"
)

// dashPlaceholders are the cells scouting exports use for "no value". They
// are normalized to the empty string at ingestion so numeric coercion treats
// them as missing instead of parsing the sign.
var dashPlaceholders = map[string]struct{}{
	"-": {},
	"–": {},
	"—": {},
}

// FileSource loads datasets from local CSV or XLSX files, dispatching on the
// file extension.
type FileSource struct{}

// NewFileSource creates a file-backed table source.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// ReadTable loads the dataset at path into a table. Header names are
// trimmed, dash placeholder cells become missing, and short rows are padded
// with missing cells.
func (s *FileSource) ReadTable(ctx context.Context, path string) (*schema.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVRows(path)
	case ".xlsx":
		rows, err = readXLSXRows(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (expected .csv or .xlsx)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	return buildTable(rows)
}

// buildTable converts raw string rows into a table of text columns. The
// first row is the header; later duplicates of a header name are ignored.
func buildTable(rows [][]string) (*schema.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset has no header row")
	}

	header := rows[0]
	dataRows := rows[1:]

	t := schema.NewTable()
	for j, rawName := range header {
		name := strings.TrimSpace(rawName)
		if name == "" || t.Has(name) {
			continue
		}
		cells := make([]string, len(dataRows))
		for i, row := range dataRows {
			if j < len(row) {
				cells[i] = cleanCell(row[j])
			}
		}
		if err := t.SetColumn(schema.NewTextSeries(name, cells)); err != nil {
			return nil, err
		}
	}

	if len(t.Names()) == 0 {
		return nil, fmt.Errorf("dataset has no named columns")
	}
	return t, nil
}

// cleanCell trims a cell and normalizes dash placeholders to missing.
func cleanCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if _, dash := dashPlaceholders[cell]; dash {
		return ""
	}
	return cell
}
