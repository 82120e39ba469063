package mcp_test

import (
	"context"
	"testing"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/internal/dataio"
	mcp_internal "github.com/lmarsden/fullback/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		Mode: "balanced",
	}

	// No store manager needed because we only exercise validation errors
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, dataio.NewFileSource(), mgr)

	ctx := context.Background()

	t.Run("get_shortlist missing dataset_path", func(t *testing.T) {
		tool := s.GetTool("get_shortlist")
		require.NotNil(t, tool, "Tool get_shortlist should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_shortlist",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "dataset_path is required")
	})

	t.Run("get_shortlist invalid mode", func(t *testing.T) {
		tool := s.GetTool("get_shortlist")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_shortlist",
				Arguments: map[string]any{
					"dataset_path": "players.csv",
					"mode":         "attacking", // Invalid
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid mode")
	})

	t.Run("get_feasibility missing dataset_path", func(t *testing.T) {
		tool := s.GetTool("get_feasibility")
		require.NotNil(t, tool, "Tool get_feasibility should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_feasibility",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "dataset_path is required")
	})

	t.Run("get_player_flags missing player", func(t *testing.T) {
		tool := s.GetTool("get_player_flags")
		require.NotNil(t, tool, "Tool get_player_flags should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_player_flags",
				Arguments: map[string]any{
					"dataset_path": "players.csv",
					"player":       "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "player is required")
	})

	t.Run("get_shortlist unreadable dataset", func(t *testing.T) {
		tool := s.GetTool("get_shortlist")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_shortlist",
				Arguments: map[string]any{
					"dataset_path": "players.pdf", // Unsupported format
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "scoring failed")
	})
}
