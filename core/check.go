package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
)

// ExecuteCheck runs the check command for recruitment pool gating.
// It scores the dataset, counts candidates clearing the overall-score
// threshold, and exits non-zero when the pool is too thin.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, src contract.TableSource, _ contract.StoreManager) error {
	start := time.Now()
	t, err := src.ReadTable(ctx, cfg.DatasetPath)
	if err != nil {
		return err
	}
	output, err := runScoringCore(t, cfg)
	if err != nil {
		return err
	}

	result := buildCheckResult(output.Results, cfg)
	printCheckResult(&result, time.Since(start))

	if !result.Passed {
		fmt.Printf("%d candidate(s) short of the %d required\n",
			result.MinCandidates-len(result.Passing), result.MinCandidates)
		os.Exit(1)
	}
	return nil
}

// buildCheckResult applies the threshold gate to scored players.
func buildCheckResult(results []schema.PlayerResult, cfg *contract.Config) schema.CheckResult {
	var passing []schema.PlayerResult
	for _, r := range results {
		if r.Overall >= cfg.CheckThreshold {
			passing = append(passing, r)
		}
	}
	passing = RankPlayers(passing, 0)

	return schema.CheckResult{
		Mode:          cfg.Mode,
		Threshold:     cfg.CheckThreshold,
		MinCandidates: cfg.MinCandidates,
		TotalPlayers:  len(results),
		Passing:       passing,
		Passed:        len(passing) >= cfg.MinCandidates,
	}
}

// printCheckResult prints the check result in a concise format suitable for
// CI-style gating in scouting workflows.
func printCheckResult(result *schema.CheckResult, duration time.Duration) {
	fmt.Println("Recruitment Pool Check:")
	fmt.Printf("  Mode:       %s\n", result.Mode)
	fmt.Printf("  Threshold:  %.2f overall\n", result.Threshold)
	fmt.Printf("  Required:   %d candidate(s)\n", result.MinCandidates)
	fmt.Println()
	fmt.Printf("Scored %d players in %v\n\n", result.TotalPlayers, duration)

	if result.Passed {
		fmt.Printf("Pool check passed: %d candidate(s) at or above threshold\n\n", len(result.Passing))
	} else {
		fmt.Printf("Pool check failed: %d candidate(s) at or above threshold\n\n", len(result.Passing))
	}

	maxToShow := 5
	for i, p := range result.Passing {
		if i >= maxToShow {
			fmt.Printf("  ... and %d more\n", len(result.Passing)-maxToShow)
			break
		}
		fmt.Printf("  - %s (%s): %.2f\n", p.Player, p.League, p.Overall)
	}
	if len(result.Passing) > 0 {
		fmt.Println()
	}
}
