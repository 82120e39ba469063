package cmd

import (
	"github.com/lmarsden/fullback/core"
	"github.com/lmarsden/fullback/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on recruitment pipeline gating.
var checkCmd = &cobra.Command{
	Use:   "check [dataset-path]",
	Short: "Verify the dataset yields enough viable candidates (fails otherwise)",
	Long: `Score the dataset and verify that enough candidates clear the overall
score threshold. Exits non-zero when the pool is too shallow.

Designed for automated scouting pipelines - run it after each data refresh to
catch datasets that no longer contain a workable recruitment pool.

Default gate: at least 3 candidates with overall score >= 0.5

Examples:
  # Check the default gate
  fullback check scouting.csv

  # Require five candidates above 0.8 in defensive mode
  fullback check scouting.csv --mode defensive --threshold 0.8 --min-candidates 5`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Threshold gating is done in ExecuteCheck
		if err := core.ExecuteCheck(rootCtx, cfg, tableSource, storeManager); err != nil {
			contract.LogFatal("Pool check failed", err)
		}
	},
}
