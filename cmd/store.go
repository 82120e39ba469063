package cmd

import (
	"fmt"

	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/internal/iocache"
	"github.com/lmarsden/fullback/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := iocache.InitRunStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetRunDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on run history management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by scoring commands. This avoids dataset loading
// and scoring config processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage historical scoring runs and exports",
	Long: `Manage the historical run data recorded by scoring commands.

When enabled, Fullback tracks every scoring run, storing:
- Run metadata (timestamp, configuration, duration)
- Per-player scores across all pillars
- Feasibility scores and profile flags

This enables longitudinal tracking of candidates across data refreshes.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  fullback store status

  # Export for analysis in pandas/DuckDB
  fullback store export --output-file scouting-history.parquet`,
}

// storeStatusCmd shows run store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about historical run tracking.

Displays:
- Backend type and connection status
- Total number of scoring runs stored
- Last and oldest run timestamps
- Total players scored across all runs
- Database table sizes

Examples:
  # Check run tracking status
  fullback store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run store status", err)
		}
		iocache.PrintRunStatus(status)
	},
}

// storeClearCmd clears the run history.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical scoring run data",
	Long: `Delete all stored scoring runs and per-player score history.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  fullback store export --output-file backup.parquet
  fullback store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearRuns(cfg.StoreBackend, contract.GetRunDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear run data", err)
		}
		fmt.Println("Run data cleared successfully.")
	},
}

// storeExportCmd exports run data to Parquet files.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all stored run data to Parquet format for use with analytics tools.

Exports two datasets:
- Scoring runs - metadata about each scoring execution
- Player scores - per-player pillar, overall and feasibility scores

Requires: --output-file parameter

Examples:
  # Export all data
  fullback store export --output-file scouting-history.parquet

  # Use with DuckDB for analysis
  fullback store export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.player_scores.parquet') LIMIT 10"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteRunExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run data", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the run store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  fullback store migrate

  # Migrate to specific version
  fullback store migrate --target-version 1

  # Rollback to initial state
  fullback store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateRuns(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
