// Package cmd defines the command-line interface for fullback.
package cmd

import (
	"github.com/lmarsden/fullback/internal/contract"
	"github.com/lmarsden/fullback/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(shortlistCmd)
	rootCmd.AddCommand(feasibilityCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-player pillar scores, bonus, age and minutes")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("mode", string(schema.BalancedMode), "Scoring mode: balanced or progressive or defensive")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("group-column", schema.LeagueColumn, "Peer group column for league-relative standardization")
	rootCmd.PersistentFlags().String("minutes-column", schema.MinutesColumn, "Minutes-played column for per-90 conversion")
	rootCmd.PersistentFlags().Float64("clip", schema.DefaultClip, "Symmetric z-score clip bound")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Run store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("dataset", "", "Path to the scouting dataset (CSV or XLSX)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of shortlistCmd to Viper
	shortlistCmd.Flags().Bool("explain", false, "Print per-player profile flags")
	shortlistCmd.Flags().Bool("feasibility", false, "Print the transfer feasibility column")
	if err := viper.BindPFlags(shortlistCmd.Flags()); err != nil {
		contract.LogFatal("Error binding shortlist flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().Float64("threshold", contract.DefaultCheckThreshold, "Minimum overall score a candidate must reach")
	checkCmd.Flags().Int("min-candidates", contract.DefaultMinCandidates, "Minimum number of candidates clearing the threshold")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
