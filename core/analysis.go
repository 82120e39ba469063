package core

import (
	"errors"
	"time"

	"github.com/lmarsden/fullback/core/agg"
	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
)

// runScoringCore performs the common Derive, Standardize, Aggregate and Score
// steps over the loaded dataset. The table is augmented in place with the
// derived per-90, z-score, pillar and score columns, and the scored players
// come back in dataset order.
func runScoringCore(t *schema.Table, cfg *contract.Config) (*schema.ShortlistOutput, error) {
	if t.Len() == 0 {
		return nil, errors.New("no players found")
	}

	allMetrics := agg.CollectPillarMetrics(cfg.PillarMetrics)

	// --- 1. Derived Columns Phase ---
	PerNinety(t, agg.CollectPerNinetyBases(allMetrics), cfg.MinutesColumn)

	// --- 2. Standardization Phase ---
	StandardizeByGroup(t, allMetrics, cfg.GroupColumn, cfg.Clip)

	// --- 3. Pillar Aggregation Phase ---
	pillars := make(map[schema.PillarKey][]float64, len(schema.AllPillars))
	for _, pillar := range schema.AllPillars {
		scores := PillarScore(t, cfg.PillarMetrics[pillar])
		pillars[pillar] = scores
		_ = t.SetColumn(schema.NewNumericSeries(string(pillar), scores))
	}

	// --- 4. Scoring Phase ---
	weights := make(map[string]float64, len(schema.AllPillars))
	for pillar, w := range cfg.ModeWeights() {
		weights[string(pillar)] = w
	}
	overall := OverallScore(t, weights)
	bonus := ApplyBonuses(t, cfg.Bonus)
	for i := range overall {
		overall[i] += bonus[i]
	}
	_ = t.SetColumn(schema.NewNumericSeries(schema.BonusScoreColumn, bonus))
	_ = t.SetColumn(schema.NewNumericSeries(schema.OverallScoreColumn, overall))

	// --- 5. Feasibility and Flags Phase ---
	feasibility := Feasibility(t, cfg.Feasibility)
	_ = t.SetColumn(schema.NewNumericSeries(schema.FeasibilityScoreColumn, feasibility))
	flags := GenerateFlags(t)
	_ = t.SetColumn(schema.NewTextSeries(schema.FlagsColumn, flags))

	// --- 6. Result Assembly ---
	results := assemblePlayerResults(t, cfg, pillars, bonus, overall, feasibility, flags)

	return &schema.ShortlistOutput{Results: results, Table: t}, nil
}

// assemblePlayerResults converts the augmented table and score slices into
// one PlayerResult per dataset row.
func assemblePlayerResults(
	t *schema.Table,
	cfg *contract.Config,
	pillars map[schema.PillarKey][]float64,
	bonus, overall, feasibility []float64,
	flags []string,
) []schema.PlayerResult {
	names := textColumn(t, schema.PlayerColumn)
	leagues := textColumn(t, cfg.GroupColumn)
	ages := coerceColumn(t, cfg.Bonus.AgeColumn)
	mins := coerceColumn(t, cfg.MinutesColumn)

	results := make([]schema.PlayerResult, t.Len())
	for i := range results {
		results[i] = schema.PlayerResult{
			Player:      names[i],
			League:      leagues[i],
			Age:         ages[i],
			Minutes:     mins[i],
			BuildUp:     pillars[schema.BuildUpPillar][i],
			Creation:    pillars[schema.CreationPillar][i],
			Defending:   pillars[schema.DefendingPillar][i],
			Bonus:       bonus[i],
			Overall:     overall[i],
			Feasibility: feasibility[i],
			Flags:       flags[i],
			Mode:        cfg.Mode,
		}
	}
	return results
}

// recordRun persists a completed scoring run to the store, if one is
// configured. Tracking failures are warnings, never run failures.
func recordRun(mgr contract.StoreManager, cfg *contract.Config, results []schema.PlayerResult, startTime time.Time) {
	if mgr == nil {
		return
	}
	store := mgr.GetRunStore()
	if store == nil {
		return
	}

	configParams := map[string]any{
		"mode":         string(cfg.Mode),
		"dataset_path": cfg.DatasetPath,
		"group_column": cfg.GroupColumn,
		"clip":         cfg.Clip,
		"result_limit": cfg.ResultLimit,
	}
	runID, err := store.BeginRun(startTime, configParams)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return
	}

	scoredAt := time.Now()
	for _, r := range results {
		if err := store.RecordPlayerScore(runID, scoredAt, r); err != nil {
			contract.LogWarn("Run tracking failed for "+r.Player, err)
		}
	}

	if err := store.EndRun(runID, time.Now(), len(results)); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}

// textColumn returns the raw text cells of a column, or empty strings for an
// absent column.
func textColumn(t *schema.Table, name string) []string {
	out := make([]string, t.Len())
	col, ok := t.Column(name)
	if !ok {
		return out
	}
	for i := range out {
		out[i] = col.Cell(i)
	}
	return out
}
