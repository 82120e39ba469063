package cmd

import (
	"github.com/lmarsden/fullback/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Fullback MCP server",
	Long:  `Launch an MCP server that allows AI agents to score scouting datasets via standard tools.`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// The dataset arrives per tool call, so skip the dataset requirement.
		// Normal output also stays quiet to avoid polluting the stdio protocol.
		return lightSetup()
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, tableSource, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
