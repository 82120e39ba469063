// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/lmarsden/fullback/schema"
)

// TableSource defines how a tabular dataset is loaded. This keeps the core
// scoring logic testable without fixture files on disk.
type TableSource interface {
	// ReadTable loads the dataset at path into a table, applying minimal
	// safe cleaning (trimmed header names, dash placeholders as missing).
	ReadTable(ctx context.Context, path string) (*schema.Table, error)
}

// RunStore defines the interface for tracking scoring runs and storing
// per-player results. This allows the store layer to be mocked for testing.
type RunStore interface {
	// BeginRun creates a new scoring run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the scoring run with completion data.
	EndRun(runID int64, endTime time.Time, totalPlayers int) error

	// RecordPlayerScore stores the scores for a single candidate.
	RecordPlayerScore(runID int64, scoredAt time.Time, result schema.PlayerResult) error

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStatus, error)

	// GetRuns returns all stored scoring runs, for export.
	GetRuns() ([]schema.ScoringRunRecord, error)

	// GetPlayerScores returns all stored player score rows, for export.
	GetPlayerScores() ([]schema.PlayerScoreRecord, error)

	// Clear removes all stored runs and player scores.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for accessing persistence stores.
type StoreManager interface {
	GetRunStore() RunStore
}
