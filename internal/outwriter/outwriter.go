// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteShortlist prints scored players using the configured output format.
func (ow *OutWriter) WriteShortlist(results []schema.PlayerResult, cfg *contract.Config, duration time.Duration) error {
	return PrintShortlistResults(results, cfg, duration)
}

// WriteFeasibility prints feasibility-ranked players using the configured output format.
func (ow *OutWriter) WriteFeasibility(results []schema.PlayerResult, cfg *contract.Config, duration time.Duration) error {
	return PrintFeasibilityResults(results, cfg, duration)
}

// WriteMetrics prints pillar definitions using the configured output format.
func (ow *OutWriter) WriteMetrics(activeWeights map[schema.ScoringMode]map[schema.PillarKey]float64, cfg *contract.Config) error {
	return PrintMetricsDefinitions(activeWeights, cfg)
}
