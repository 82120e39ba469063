package core

import (
	"testing"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCheckResult(t *testing.T) {
	results := []schema.PlayerResult{
		{Player: "A", Overall: 0.8},
		{Player: "B", Overall: 0.5},
		{Player: "C", Overall: 0.2},
	}
	cfg := &contract.Config{
		Mode:           schema.BalancedMode,
		CheckThreshold: 0.5,
		MinCandidates:  2,
	}

	result := buildCheckResult(results, cfg)

	assert.True(t, result.Passed)
	assert.Equal(t, 3, result.TotalPlayers)
	require.Len(t, result.Passing, 2, "threshold is inclusive")
	assert.Equal(t, "A", result.Passing[0].Player, "passing list is ranked")
	assert.Equal(t, "B", result.Passing[1].Player)
}

func TestBuildCheckResultFails(t *testing.T) {
	results := []schema.PlayerResult{
		{Player: "A", Overall: 0.8},
		{Player: "B", Overall: 0.2},
	}
	cfg := &contract.Config{
		Mode:           schema.BalancedMode,
		CheckThreshold: 0.5,
		MinCandidates:  3,
	}

	result := buildCheckResult(results, cfg)

	assert.False(t, result.Passed)
	assert.Len(t, result.Passing, 1)
}

func TestBuildCheckResultEmpty(t *testing.T) {
	cfg := &contract.Config{
		Mode:           schema.BalancedMode,
		CheckThreshold: 0.5,
		MinCandidates:  1,
	}

	result := buildCheckResult(nil, cfg)

	assert.False(t, result.Passed)
	assert.Zero(t, result.TotalPlayers)
	assert.Empty(t, result.Passing)
}
