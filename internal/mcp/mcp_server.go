// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Fullback MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, src contract.TableSource, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Fullback Scouting Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		src:     src,
		mgr:     mgr,
	}

	// --- 1. Tool: get_shortlist ---
	s.AddTool(mcp.NewTool("get_shortlist",
		mcp.WithDescription("Score a right-back scouting dataset and return the top candidates by overall score."),
		mcp.WithString("dataset_path", mcp.Description("Path to the scouting dataset (CSV or XLSX). Defaults to the configured dataset.")),
		mcp.WithString("mode", mcp.Description("Scoring mode (balanced, progressive, defensive). Defaults to 'balanced'."), mcp.Enum("balanced", "progressive", "defensive")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetShortlist)

	// --- 2. Tool: get_feasibility ---
	s.AddTool(mcp.NewTool("get_feasibility",
		mcp.WithDescription("Score a right-back scouting dataset and return the top candidates by transfer feasibility."),
		mcp.WithString("dataset_path", mcp.Description("Path to the scouting dataset (CSV or XLSX).")),
		mcp.WithString("mode", mcp.Description("Scoring mode (balanced, progressive, defensive)."), mcp.Enum("balanced", "progressive", "defensive")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results.")),
	), h.handleGetFeasibility)

	// --- 3. Tool: get_player_flags ---
	s.AddTool(mcp.NewTool("get_player_flags",
		mcp.WithDescription("Score a right-back scouting dataset and return the full score breakdown and profile flags for one named player."),
		mcp.WithString("player", mcp.Description("Player name as it appears in the dataset."), mcp.Required()),
		mcp.WithString("dataset_path", mcp.Description("Path to the scouting dataset (CSV or XLSX).")),
		mcp.WithString("mode", mcp.Description("Scoring mode (balanced, progressive, defensive)."), mcp.Enum("balanced", "progressive", "defensive")),
	), h.handleGetPlayerFlags)

	return s
}

// StartMCPServer starts the Fullback MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, src contract.TableSource, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, src, mgr)
	return server.ServeStdio(s)
}
