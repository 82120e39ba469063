package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/internal/parquet"
	"github.com/lmarsden/fullback/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintShortlistResults outputs scored players ranked by overall score,
// dispatching based on the output format configured.
func PrintShortlistResults(results []schema.PlayerResult, cfg *contract.Config, duration time.Duration) error {
	return printPlayerResults(results, cfg, duration, "Showing top %d players by overall score (mode: %s)\n")
}

// PrintFeasibilityResults outputs scored players ranked by transfer
// feasibility, dispatching based on the output format configured.
func PrintFeasibilityResults(results []schema.PlayerResult, cfg *contract.Config, duration time.Duration) error {
	feasCfg := cfg.Clone()
	feasCfg.ShowFeasibility = true
	return printPlayerResults(results, feasCfg, duration, "Showing top %d players by transfer feasibility (mode: %s)\n")
}

// printPlayerResults is the shared dispatcher behind both player rankings.
func printPlayerResults(results []schema.PlayerResult, cfg *contract.Config, duration time.Duration, summaryFmt string) error {
	enriched := schema.EnrichPlayers(results)
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForPlayers(w, enriched)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForPlayers(w, enriched, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeParquetResultsForPlayers(enriched, cfg)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePlayerTable(enriched, cfg, fmtFloat, duration, summaryFmt, w)
		}, "Wrote table")
	}
}

// writePlayerTable generates and writes the human-readable table.
func writePlayerTable(players []schema.EnrichedPlayerResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, summaryFmt string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Player", "League", "Score", "Label"}
	if cfg.ShowFeasibility {
		headers = append(headers, "Feas")
	}
	if cfg.Detail {
		headers = append(headers, "BuildUp", "Creation", "Defending", "Bonus", "Age", "Mins")
	}
	if cfg.Explain {
		headers = append(headers, "Flags")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for _, p := range players {
		label := p.Label
		if cfg.UseColors {
			label = contract.GetColorLabel(label)
		}
		row := []string{
			strconv.Itoa(p.Rank),
			contract.TruncateName(p.Player, nameWidth),
			p.League,
			fmtFloat(p.Overall),
			label,
		}
		if cfg.ShowFeasibility {
			row = append(row, fmtFloat(p.Feasibility))
		}
		if cfg.Detail {
			row = append(row,
				fmtFloat(p.BuildUp),
				fmtFloat(p.Creation),
				fmtFloat(p.Defending),
				fmtFloat(p.Bonus),
				fmtFloat(p.Age),
				fmtFloat(p.Minutes),
			)
		}
		if cfg.Explain {
			row = append(row, p.Flags)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, summaryFmt, len(players), cfg.Mode); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v. Run store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForPlayers writes scored players in CSV format.
func writeCSVResultsForPlayers(w io.Writer, players []schema.EnrichedPlayerResult, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"player",
		"league",
		"age",
		"minutes",
		"build_up",
		"creation",
		"defending",
		"bonus",
		"overall",
		"feasibility",
		"label",
		"flags",
		"mode",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range players {
			rec := []string{
				strconv.Itoa(p.Rank),
				p.Player,
				p.League,
				fmtFloat(p.Age),
				fmtFloat(p.Minutes),
				fmtFloat(p.BuildUp),
				fmtFloat(p.Creation),
				fmtFloat(p.Defending),
				fmtFloat(p.Bonus),
				fmtFloat(p.Overall),
				fmtFloat(p.Feasibility),
				p.Label,
				p.Flags,
				string(p.Mode),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// jsonPlayerResult is the JSON rendering of an enriched result. Scores are
// pointers so missing values serialize as null; encoding/json rejects NaN.
type jsonPlayerResult struct {
	Rank        int                `json:"rank"`
	Label       string             `json:"label"`
	Player      string             `json:"player"`
	League      string             `json:"league"`
	Age         *float64           `json:"age"`
	Minutes     *float64           `json:"minutes"`
	BuildUp     *float64           `json:"build_up"`
	Creation    *float64           `json:"creation"`
	Defending   *float64           `json:"defending"`
	Bonus       *float64           `json:"bonus"`
	Overall     *float64           `json:"overall"`
	Feasibility *float64           `json:"feasibility"`
	Flags       string             `json:"flags,omitempty"`
	Mode        schema.ScoringMode `json:"mode"`
}

// writeJSONResultsForPlayers writes scored players in JSON format.
func writeJSONResultsForPlayers(w io.Writer, players []schema.EnrichedPlayerResult) error {
	output := make([]jsonPlayerResult, len(players))
	for i, p := range players {
		output[i] = jsonPlayerResult{
			Rank:        p.Rank,
			Label:       p.Label,
			Player:      p.Player,
			League:      p.League,
			Age:         finitePtr(p.Age),
			Minutes:     finitePtr(p.Minutes),
			BuildUp:     finitePtr(p.BuildUp),
			Creation:    finitePtr(p.Creation),
			Defending:   finitePtr(p.Defending),
			Bonus:       finitePtr(p.Bonus),
			Overall:     finitePtr(p.Overall),
			Feasibility: finitePtr(p.Feasibility),
			Flags:       p.Flags,
			Mode:        p.Mode,
		}
	}
	return writeJSON(w, output)
}

// writeParquetResultsForPlayers writes scored players to a Parquet file.
// Parquet is a binary format and always requires an output file.
func writeParquetResultsForPlayers(players []schema.EnrichedPlayerResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	rows := parquet.ConvertShortlistResults(players, time.Now())
	if err := parquet.WritePlayerScoresParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Printf("Wrote %d players to %s\n", len(rows), cfg.OutputFile)
	return nil
}
