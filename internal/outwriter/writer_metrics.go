package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/lmarsden/fullback/schema"
)

// writeJSONMetrics writes the metrics definitions in JSON format.
func writeJSONMetrics(w io.Writer, renderModel *schema.MetricsRenderModel) error {
	return writeJSON(w, renderModel)
}

// writeCSVMetrics writes the metrics definitions in CSV format.
func writeCSVMetrics(w io.Writer, renderModel *schema.MetricsRenderModel) error {
	header := []string{"Mode", "Purpose", "Formula"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, mode := range renderModel.Modes {
			record := []string{
				mode.Name,
				mode.Purpose,
				mode.Formula,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		for _, pillar := range renderModel.Pillars {
			record := []string{
				pillar.Name,
				"pillar",
				strings.Join(pillar.Metrics, "|"),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
