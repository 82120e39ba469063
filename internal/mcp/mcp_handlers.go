package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lmarsden/fullback/core"
	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	src     contract.TableSource
	mgr     contract.StoreManager
}

// applyCommonArgs copies the shared dataset_path and mode arguments onto a
// cloned config.
func (h *toolHandler) applyCommonArgs(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("dataset_path", ""); p != "" {
		cfg.DatasetPath = p
	}
	if m := request.GetString("mode", ""); m != "" {
		mode := schema.ScoringMode(m)
		if _, ok := schema.ValidScoringModes[mode]; !ok {
			return nil, fmt.Errorf("invalid mode: %s", m)
		}
		cfg.Mode = mode
	}
	if cfg.DatasetPath == "" {
		return nil, fmt.Errorf("dataset_path is required")
	}
	return cfg, nil
}

func (h *toolHandler) handleGetShortlist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyCommonArgs(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid shortlist parameters: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, _, err := core.GetShortlistResults(ctx, cfg, h.src, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	enriched := schema.EnrichPlayers(ranked)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetFeasibility(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyCommonArgs(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid feasibility parameters: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, _, err := core.GetFeasibilityResults(ctx, cfg, h.src, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	enriched := schema.EnrichPlayers(ranked)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPlayerFlags(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	player := request.GetString("player", "")
	if player == "" {
		return mcp.NewToolResultError("player is required"), nil
	}

	cfg, err := h.applyCommonArgs(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid player flags parameters: %v", err)), nil
	}
	// Score the full dataset so the lookup sees every candidate
	cfg.ResultLimit = 0

	ranked, _, err := core.GetShortlistResults(ctx, cfg, h.src, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	for _, r := range ranked {
		if strings.EqualFold(r.Player, player) {
			jsonData, _ := json.MarshalIndent(r, "", "  ")
			return mcp.NewToolResultText(string(jsonData)), nil
		}
	}

	return mcp.NewToolResultError(fmt.Sprintf("player not found in dataset: %s", player)), nil
}
