package cmd

import (
	"github.com/lmarsden/fullback/core"
	"github.com/lmarsden/fullback/internal/contract"
	"github.com/spf13/cobra"
)

// shortlistCmd performs the main recruitment scoring.
var shortlistCmd = &cobra.Command{
	Use:   "shortlist [dataset-path]",
	Short: "Show the top right-back candidates ranked by overall score.",
	Long: `Score every player in a scouting dataset and rank candidates by overall score.

Converts raw counting stats to per-90 rates, standardizes each metric against
league peers with clipped z-scores, and blends the build-up, creation and
defending pillars using the active mode's weights. Age and minutes bonuses
reward players in their prime window with a real minutes base.

Scoring modes:
  balanced    - even blend of all three pillars (default)
  progressive - ball progression and chance creation first
  defensive   - duels and recoveries first

Examples:
  # Rank candidates from a CSV scouting export
  fullback shortlist scouting.csv

  # Focus on attacking profiles, top 10 only
  fullback shortlist scouting.csv --mode progressive --limit 10

  # Include pillar breakdown and profile flags
  fullback shortlist scouting.xlsx --detail --explain

  # Export findings to CSV for the recruitment meeting
  fullback shortlist scouting.csv --output csv --output-file shortlist.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteShortlist(rootCtx, cfg, tableSource, storeManager); err != nil {
			contract.LogFatal("Cannot run shortlist scoring", err)
		}
	},
}
