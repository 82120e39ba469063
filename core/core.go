// Package core implements the right-back scoring pipeline: numeric coercion,
// per-90 normalization, group standardization, pillar aggregation, overall
// scoring with bonuses, transfer feasibility and profile flags.
package core

import (
	"context"
	"time"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/internal/outwriter"
	"github.com/lmarsden/fullback/schema"
)

// ExecutorFunc defines the function signature for executing different
// scoring commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, src contract.TableSource, mgr contract.StoreManager) error

// GetShortlistResults runs the full scoring pipeline and returns the top
// players by overall score, plus the elapsed time.
func GetShortlistResults(ctx context.Context, cfg *contract.Config, src contract.TableSource, mgr contract.StoreManager) ([]schema.PlayerResult, time.Duration, error) {
	start := time.Now()
	t, err := src.ReadTable(ctx, cfg.DatasetPath)
	if err != nil {
		return nil, 0, err
	}
	output, err := runScoringCore(t, cfg)
	if err != nil {
		return nil, 0, err
	}
	recordRun(mgr, cfg, output.Results, start)
	ranked := RankPlayers(output.Results, cfg.ResultLimit)
	return ranked, time.Since(start), nil
}

// GetFeasibilityResults runs the full scoring pipeline and returns the top
// players by transfer feasibility rather than footballing merit.
func GetFeasibilityResults(ctx context.Context, cfg *contract.Config, src contract.TableSource, mgr contract.StoreManager) ([]schema.PlayerResult, time.Duration, error) {
	start := time.Now()
	t, err := src.ReadTable(ctx, cfg.DatasetPath)
	if err != nil {
		return nil, 0, err
	}
	output, err := runScoringCore(t, cfg)
	if err != nil {
		return nil, 0, err
	}
	recordRun(mgr, cfg, output.Results, start)
	ranked := RankByFeasibility(output.Results, cfg.ResultLimit)
	return ranked, time.Since(start), nil
}

// ExecuteShortlist runs the full scoring pipeline and prints the top players
// by overall score. It serves as the main entry point for the 'shortlist'
// command.
func ExecuteShortlist(ctx context.Context, cfg *contract.Config, src contract.TableSource, mgr contract.StoreManager) error {
	ranked, duration, err := GetShortlistResults(ctx, cfg, src, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintShortlistResults(ranked, cfg, duration)
}

// ExecuteFeasibility runs the full scoring pipeline and prints the top
// players by transfer feasibility rather than footballing merit. It serves
// as the main entry point for the 'feasibility' command.
func ExecuteFeasibility(ctx context.Context, cfg *contract.Config, src contract.TableSource, mgr contract.StoreManager) error {
	ranked, duration, err := GetFeasibilityResults(ctx, cfg, src, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintFeasibilityResults(ranked, cfg, duration)
}

// ExecuteMetrics displays the pillar definitions and active weights for all
// scoring modes. This is a static display that does not require a dataset.
func ExecuteMetrics(_ context.Context, cfg *contract.Config) error {
	return outwriter.PrintMetricsDefinitions(cfg.ComputedWeights, cfg)
}
