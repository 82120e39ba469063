package cmd

import (
	"github.com/lmarsden/fullback/core"
	"github.com/lmarsden/fullback/internal/contract"
	"github.com/spf13/cobra"
)

// feasibilityCmd ranks candidates by transfer feasibility.
var feasibilityCmd = &cobra.Command{
	Use:   "feasibility [dataset-path]",
	Short: "Show the top candidates ranked by transfer feasibility.",
	Long: `Score every player in a scouting dataset and rank candidates by how
realistic a transfer is, rather than by footballing merit alone.

Feasibility blends three signals into a [0,1] score:
- Market value: cheaper players relative to the dataset rank higher
- Contract runway: expiring deals rank higher than fresh long-term ones
- Work permit eligibility: GBE-eligible players avoid a penalty

Use this view to find attainable targets among well-scored players.

Examples:
  # Rank the most attainable candidates
  fullback feasibility scouting.csv

  # Combine with detail to see the underlying pillar scores
  fullback feasibility scouting.csv --detail

  # Export for the transfer committee
  fullback feasibility scouting.csv --output json --output-file targets.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFeasibility(rootCtx, cfg, tableSource, storeManager); err != nil {
			contract.LogFatal("Cannot run feasibility scoring", err)
		}
	},
}
