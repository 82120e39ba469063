package outwriter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
)

// getDisplayWeightsForMode returns the weights to display for a given scoring mode.
// Uses active weights if available, otherwise falls back to defaults.
func getDisplayWeightsForMode(mode schema.ScoringMode, activeWeights map[schema.ScoringMode]map[schema.PillarKey]float64) map[string]float64 {
	defaultWeights := schema.GetDefaultWeights(mode)

	weights := make(map[string]float64)
	for k, v := range defaultWeights {
		weights[string(k)] = v
	}

	// Override with active weights if provided
	if activeWeights != nil {
		if modeWeights, ok := activeWeights[mode]; ok {
			for k, v := range modeWeights {
				weights[string(k)] = v
			}
		}
	}

	return weights
}

// formatWeights formats weights for display in formulas.
func formatWeights(weights map[string]float64) string {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, key := range keys {
		if weight := weights[key]; weight > 0 {
			parts = append(parts, fmt.Sprintf("%.2f*%s", weight, key))
		}
	}
	return strings.Join(parts, " + ")
}

// PrintMetricsDefinitions displays the formal definitions of all scoring
// modes and pillars. This is a static display that does not require a
// dataset.
func PrintMetricsDefinitions(activeWeights map[schema.ScoringMode]map[schema.PillarKey]float64, cfg *contract.Config) error {
	renderModel := buildMetricsRenderModel(activeWeights, cfg)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONMetrics(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVMetrics(w, renderModel)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMetricsText(w, renderModel)
		}, "Wrote text")
	}
}

// printMetricsText displays metrics in human-readable text format.
func printMetricsText(w io.Writer, renderModel *schema.MetricsRenderModel) error {
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len(renderModel.Title))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", renderModel.Description); err != nil {
		return err
	}

	for _, mode := range renderModel.Modes {
		if _, err := fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(mode.Name), mode.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: Overall = %s + bonus\n\n", mode.Formula); err != nil {
			return err
		}
	}

	for _, pillar := range renderModel.Pillars {
		if _, err := fmt.Fprintf(w, "Pillar %s:\n", pillar.Name); err != nil {
			return err
		}
		for _, metric := range pillar.Metrics {
			if _, err := fmt.Fprintf(w, "   - %s\n", metric); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n", renderModel.BonusNote); err != nil {
		return err
	}
	return nil
}

// buildMetricsRenderModel constructs the complete render model with all processed data.
func buildMetricsRenderModel(activeWeights map[schema.ScoringMode]map[schema.PillarKey]float64, cfg *contract.Config) *schema.MetricsRenderModel {
	modes := []schema.MetricsMode{
		{
			Name:    string(schema.BalancedMode),
			Purpose: "All-round right-backs - even blend of the three pillars",
		},
		{
			Name:    string(schema.ProgressiveMode),
			Purpose: "Attacking profiles - ball progression and chance creation first",
		},
		{
			Name:    string(schema.DefensiveMode),
			Purpose: "Defensive stoppers - duels and recoveries first",
		},
	}

	modesWithData := make([]schema.MetricsModeWithData, len(modes))
	for i, mode := range modes {
		weights := getDisplayWeightsForMode(schema.ScoringMode(mode.Name), activeWeights)
		modesWithData[i] = schema.MetricsModeWithData{
			MetricsMode: mode,
			Weights:     weights,
			Formula:     formatWeights(weights),
		}
	}

	pillars := make([]schema.MetricsPillar, 0, len(schema.AllPillars))
	for _, key := range schema.AllPillars {
		metrics := cfg.PillarMetrics[key]
		if metrics == nil {
			metrics = schema.PillarMetrics[key]
		}
		pillars = append(pillars, schema.MetricsPillar{
			Name:    string(key),
			Metrics: append([]string(nil), metrics...),
		})
	}

	return &schema.MetricsRenderModel{
		Title:       "Fullback Scoring Modes",
		Description: "Each pillar = mean of clipped z-scores within the league peer group",
		Modes:       modesWithData,
		Pillars:     pillars,
		BonusNote: fmt.Sprintf("Bonus: +%.2f for age %g-%g, +%.2f for %g+ minutes",
			cfg.Bonus.AgeBonus, cfg.Bonus.AgeMin, cfg.Bonus.AgeMax,
			cfg.Bonus.MinutesBonus, cfg.Bonus.MinMinutes),
	}
}
