package cmd

import (
	"github.com/lmarsden/fullback/core"
	"github.com/lmarsden/fullback/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of all scoring modes.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display pillar definitions and weights for all scoring modes",
	Long: `Show the pillar compositions, weights, and bonus rules for all scoring modes.

Provides complete transparency into how candidates are ranked, including:
- Scoring mode purpose and focus
- Pillar names and their contribution weights
- Metric columns feeding each pillar
- Custom weights if configured via .fullback.yaml

No dataset is read - this is purely informational.

Examples:
  # Show default scoring definitions
  fullback metrics

  # View with custom weights from config file
  fullback metrics --config .fullback.yaml`,
	PreRunE: lightSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
