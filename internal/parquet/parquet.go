// Package parquet provides data structures and functions for exporting
// scoring run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/lmarsden/fullback/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoringRun represents a single scoring run with metadata.
// This struct maps to the fullback_scoring_runs database table.
type ScoringRun struct {
	// RunID is the unique identifier for this scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalPlayers is the number of players scored in this run
	TotalPlayers int32 `parquet:"total_players,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// PlayerScore represents the scores for a single player in one run.
// This struct maps to the fullback_player_scores database table.
type PlayerScore struct {
	// RunID references the parent scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// Player is the candidate name from the dataset
	Player string `parquet:"player,snappy"`

	// League is the peer group the candidate was standardized against
	League string `parquet:"league,snappy"`

	// ScoredAt is when this player was scored
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// Age is the candidate age in years
	Age float64 `parquet:"age,snappy"`

	// Minutes is the minutes played over the dataset window
	Minutes float64 `parquet:"minutes,snappy"`

	// ScoreBuildUp is the build-up pillar score
	ScoreBuildUp float64 `parquet:"score_build_up,snappy"`

	// ScoreCreation is the creation pillar score
	ScoreCreation float64 `parquet:"score_creation,snappy"`

	// ScoreDefending is the defending pillar score
	ScoreDefending float64 `parquet:"score_defending,snappy"`

	// Bonus is the age/minutes bonus adjustment
	Bonus float64 `parquet:"bonus,snappy"`

	// Overall is the weighted pillar blend plus bonus
	Overall float64 `parquet:"overall,snappy"`

	// Feasibility is the transfer feasibility score in [0,1]
	Feasibility float64 `parquet:"feasibility,snappy"`

	// Flags holds the profile tags joined by "; " (nullable)
	Flags *string `parquet:"flags,optional,snappy"`

	// Label is the strength label derived from the overall score
	Label string `parquet:"label,snappy"`
}

// WriteScoringRunsParquet writes a slice of ScoringRun structs to a Parquet file.
func WriteScoringRunsParquet(data []ScoringRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ScoringRun struct tags
	writer := parquet.NewGenericWriter[ScoringRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WritePlayerScoresParquet writes a slice of PlayerScore structs to a Parquet file.
func WritePlayerScoresParquet(data []PlayerScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the PlayerScore struct tags
	writer := parquet.NewGenericWriter[PlayerScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchScoringRuns returns sample scoring run data for demos and tests.
func MockFetchScoringRuns() []ScoringRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(3 * time.Second)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"mode":"balanced","result_limit":25,"clip":2.5}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(5 * time.Second)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"mode":"defensive","result_limit":10,"clip":2.5}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []ScoringRun{
		{
			RunID:         1,
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			TotalPlayers:  180,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         2,
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			TotalPlayers:  95,
			ConfigParams:  &configParams2,
		},
		{
			RunID:     3,
			StartTime: startTime3,
		},
	}
}

// MockFetchPlayerScores returns sample player score data for demos and tests.
func MockFetchPlayerScores() []PlayerScore {
	now := time.Now()
	flags1 := "progressive outlet; two-way profile"
	flags2 := "defensive stopper"

	return []PlayerScore{
		{
			RunID:          1,
			Player:         "J. Frimpong",
			League:         "Bundesliga",
			ScoredAt:       now.Add(-2 * time.Hour),
			Age:            24,
			Minutes:        2430,
			ScoreBuildUp:   1.12,
			ScoreCreation:  1.45,
			ScoreDefending: 0.20,
			Bonus:          0.15,
			Overall:        1.07,
			Feasibility:    0.62,
			Flags:          &flags1,
			Label:          "Elite",
		},
		{
			RunID:          1,
			Player:         "D. Wan-Bissaka",
			League:         "Premier League",
			ScoredAt:       now.Add(-2 * time.Hour),
			Age:            27,
			Minutes:        2880,
			ScoreBuildUp:   -0.35,
			ScoreCreation:  -0.10,
			ScoreDefending: 1.80,
			Bonus:          0.15,
			Overall:        0.68,
			Feasibility:    0.48,
			Flags:          &flags2,
			Label:          "Strong",
		},
		{
			RunID:          2,
			Player:         "M. Prospect",
			League:         "Eredivisie",
			ScoredAt:       now.Add(-24 * time.Hour),
			Age:            19,
			Minutes:        910,
			ScoreBuildUp:   0.40,
			ScoreCreation:  0.22,
			ScoreDefending: -0.55,
			Bonus:          0,
			Overall:        0.02,
			Feasibility:    0.81,
			Label:          "Average",
		},
	}
}

// ConvertScoringRunRecords converts store records to Parquet rows.
func ConvertScoringRunRecords(records []schema.ScoringRunRecord) []ScoringRun {
	out := make([]ScoringRun, len(records))
	for i, r := range records {
		out[i] = ScoringRun{
			RunID:         r.RunID,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			RunDurationMs: r.RunDurationMs,
			TotalPlayers:  r.TotalPlayers,
			ConfigParams:  r.ConfigParams,
		}
	}
	return out
}

// ConvertPlayerScoreRecords converts store records to Parquet rows.
func ConvertPlayerScoreRecords(records []schema.PlayerScoreRecord) []PlayerScore {
	out := make([]PlayerScore, len(records))
	for i, r := range records {
		var flags *string
		if r.Flags != "" {
			f := r.Flags
			flags = &f
		}
		out[i] = PlayerScore{
			RunID:          r.RunID,
			Player:         r.Player,
			League:         r.League,
			ScoredAt:       r.ScoredAt,
			Age:            r.Age,
			Minutes:        r.Minutes,
			ScoreBuildUp:   r.BuildUp,
			ScoreCreation:  r.Creation,
			ScoreDefending: r.Defending,
			Bonus:          r.Bonus,
			Overall:        r.Overall,
			Feasibility:    r.Feasibility,
			Flags:          flags,
			Label:          r.Label,
		}
	}
	return out
}

// ConvertShortlistResults converts ranked shortlist results to Parquet rows
// for direct parquet output from the scoring commands. Zero is used for the
// run ID since no store run is involved.
func ConvertShortlistResults(results []schema.EnrichedPlayerResult, scoredAt time.Time) []PlayerScore {
	out := make([]PlayerScore, len(results))
	for i, r := range results {
		var flags *string
		if r.Flags != "" {
			f := r.Flags
			flags = &f
		}
		out[i] = PlayerScore{
			Player:         r.Player,
			League:         r.League,
			ScoredAt:       scoredAt,
			Age:            r.Age,
			Minutes:        r.Minutes,
			ScoreBuildUp:   r.BuildUp,
			ScoreCreation:  r.Creation,
			ScoreDefending: r.Defending,
			Bonus:          r.Bonus,
			Overall:        r.Overall,
			Feasibility:    r.Feasibility,
			Flags:          flags,
			Label:          r.Label,
		}
	}
	return out
}
