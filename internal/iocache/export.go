package iocache

import (
	"errors"
	"fmt"

	"github.com/lmarsden/fullback/internal/parquet"
)

// ExecuteRunExport performs the actual export of stored run data to Parquet files.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no scoring run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scoring runs: %d\n", status.TotalRuns)
	fmt.Printf("Total player records: %d\n", status.TableSizes[playerScoresTable])

	// Retrieve all scoring runs
	runs, err := store.GetRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve scoring runs: %w", err)
	}

	// Retrieve all player scores
	playerScores, err := store.GetPlayerScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve player scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertScoringRunRecords(runs)
	parquetPlayerScores := parquet.ConvertPlayerScoreRecords(playerScores)

	// Write scoring runs to Parquet
	runsFile := outputFile + ".scoring_runs.parquet"
	if err := parquet.WriteScoringRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write scoring runs: %w", err)
	}
	fmt.Printf("Exported %d scoring runs to: %s\n", len(parquetRuns), runsFile)

	// Write player scores to Parquet
	playerScoresFile := outputFile + ".player_scores.parquet"
	if err := parquet.WritePlayerScoresParquet(parquetPlayerScores, playerScoresFile); err != nil {
		return fmt.Errorf("failed to write player scores: %w", err)
	}
	fmt.Printf("Exported %d player score records to: %s\n", len(parquetPlayerScores), playerScoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
