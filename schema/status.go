package schema

import "time"

// RunStatus represents the status of the scouting-run store.
type RunStatus struct {
	Backend            string           `json:"backend"`
	Connected          bool             `json:"connected"`
	TotalRuns          int              `json:"total_runs"`
	LastRunID          int64            `json:"last_run_id"`
	LastRunTime        time.Time        `json:"last_run_time"`
	OldestRunTime      time.Time        `json:"oldest_run_time"`
	TotalPlayersScored int              `json:"total_players_scored"`
	TableSizes         map[string]int64 `json:"table_sizes"`
}

// ScoringRunRecord represents a row from the fullback_scoring_runs table.
type ScoringRunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalPlayers  int32
	ConfigParams  *string
}

// PlayerScoreRecord represents a row from the fullback_player_scores table.
type PlayerScoreRecord struct {
	RunID       int64
	Player      string
	League      string
	ScoredAt    time.Time
	Age         float64
	Minutes     float64
	BuildUp     float64
	Creation    float64
	Defending   float64
	Bonus       float64
	Overall     float64
	Feasibility float64
	Flags       string
	Label       string
}
