// Package main provides a performance benchmarking tool for the Fullback CLI.
// It generates synthetic scouting datasets of increasing size, measures
// execution times across dataset sizes and command types, running each test
// multiple times and averaging, generating CSV output for performance
// analysis and documentation.
//
// Prerequisites:
// - fullback binary installed and available in PATH
//
// Usage: go run benchmark/main.go [output-dir]
//
//	output-dir: Directory where synthetic datasets are generated
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (first run treated as
// cold, remaining runs averaged as warm).
type BenchmarkResult struct {
	Dataset  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	OutputDir    string
	Timeout      time.Duration
	Runs         int
	DatasetSizes map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [output-dir]\n", os.Args[0])
		os.Exit(1)
	}
	outputDir := os.Args[1]

	config := BenchmarkConfig{
		OutputDir: outputDir,
		Timeout:   2 * time.Minute,
		Runs:      4,
		DatasetSizes: map[string]int{
			"small":  200,
			"medium": 2000,
			"large":  20000,
		},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	datasets, err := generateDatasets(config)
	if err != nil {
		fmt.Printf("Failed to generate datasets: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config, datasets)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the fullback binary exists.
func checkPrerequisites() error {
	if _, err := exec.LookPath("fullback"); err != nil {
		return fmt.Errorf("fullback binary not found in PATH")
	}
	return nil
}

// generateDatasets writes one synthetic CSV per configured size and returns
// name -> path.
func generateDatasets(config BenchmarkConfig) (map[string]string, error) {
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, err
	}

	leagues := []string{"Premier League", "La Liga", "Bundesliga", "Serie A", "Ligue 1"}
	header := []string{
		"Player", "League", "Age", "Minutes", "(€) Market Value", "Contract End", "GBE",
		"% Passing", "Progressive Carries", "Ball Prog. by Carrying",
		"Pass Receipts in Space Completed", "% Passing Under Pressure",
		"Expected Assists", "Open Play Key Passes", "Completed Crosses",
		"Cross Efficiency", "xT Passing",
		"Successful Tackles", "Interceptions", "Tackles/Was Dribbled", "% Aerial Wins",
	}

	rng := rand.New(rand.NewSource(42))
	datasets := make(map[string]string, len(config.DatasetSizes))

	for name, rows := range config.DatasetSizes {
		path := filepath.Join(config.OutputDir, fmt.Sprintf("scouting_%s.csv", name))
		file, err := os.Create(path)
		if err != nil {
			return nil, err
		}

		writer := csv.NewWriter(file)
		if err := writer.Write(header); err != nil {
			_ = file.Close()
			return nil, err
		}

		for i := range rows {
			minutes := 500 + rng.Intn(2900)
			record := []string{
				fmt.Sprintf("Player %06d", i),
				leagues[rng.Intn(len(leagues))],
				strconv.Itoa(17 + rng.Intn(18)),
				strconv.Itoa(minutes),
				fmt.Sprintf("%d,000,000", 1+rng.Intn(60)),
				fmt.Sprintf("Jun-%d", 25+rng.Intn(5)),
				[]string{"Yes", "No"}[rng.Intn(2)],
				fmtFloat(70 + rng.Float64()*25),
				strconv.Itoa(rng.Intn(120)),
				strconv.Itoa(rng.Intn(500)),
				strconv.Itoa(rng.Intn(60)),
				fmtFloat(60 + rng.Float64()*30),
				fmtFloat(rng.Float64() * 6),
				strconv.Itoa(rng.Intn(50)),
				strconv.Itoa(rng.Intn(60)),
				fmtFloat(15 + rng.Float64()*25),
				fmtFloat(rng.Float64() * 8),
				strconv.Itoa(rng.Intn(100)),
				strconv.Itoa(rng.Intn(80)),
				fmtFloat(rng.Float64() * 5),
				fmtFloat(40 + rng.Float64()*35),
			}
			if err := writer.Write(record); err != nil {
				_ = file.Close()
				return nil, err
			}
		}

		writer.Flush()
		if err := file.Close(); err != nil {
			return nil, err
		}

		fmt.Printf("Generated %s dataset (%d players) at %s\n", name, rows, path)
		datasets[name] = path
	}

	return datasets, nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// runBenchmarks executes all benchmark tests across generated datasets.
func runBenchmarks(config BenchmarkConfig, datasets map[string]string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d runs each\n",
		len(datasets), config.Timeout, config.Runs)

	commands := []struct {
		name      string
		extraArgs []string
	}{
		{"shortlist", nil},
		{"shortlist-detail", []string{"--detail", "--explain"}},
		{"feasibility", nil},
		{"check", []string{"--threshold", "0.5", "--min-candidates", "1"}},
	}

	for _, size := range []string{"small", "medium", "large"} {
		dataset, ok := datasets[size]
		if !ok {
			continue
		}
		fmt.Printf("Benchmarking %s dataset\n", size)

		for _, command := range commands {
			base := strings.SplitN(command.name, "-", 2)[0]
			result := runBenchmarkSuite(config, size, dataset, base, command.name, command.extraArgs)
			results = append(results, result)
		}
	}

	return results
}

// runBenchmarkSuite runs one command against one dataset across all runs.
func runBenchmarkSuite(config BenchmarkConfig, size, dataset, command, label string, extraArgs []string) BenchmarkResult {
	fmt.Printf("Running %s on %s dataset\n", label, size)

	cold, warmTimes := runBenchmark(config, dataset, command, extraArgs)

	coldStr := "TIMEOUT"
	if cold > 0 {
		coldStr = fmt.Sprintf("%.3fs", cold)
	}

	warmStr := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmStr = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldStr, warmStr)

	return BenchmarkResult{
		Dataset:  size,
		Command:  label,
		ColdTime: coldStr,
		WarmTime: warmStr,
	}
}

// runBenchmark executes a fullback command multiple times and returns the
// cold time plus remaining warm times.
func runBenchmark(config BenchmarkConfig, dataset, command string, extraArgs []string) (coldTime float64, warmTimes []float64) {
	// Run tracking would dominate small datasets, so benchmark pure scoring
	args := []string{command, dataset, "--store-backend", "none"}
	args = append(args, extraArgs...)

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("fullback", args...)

		done := make(chan bool)
		var cmdErr error

		go func() {
			_, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/fullback_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, label := range []string{"shortlist", "shortlist-detail", "feasibility", "check"} {
		fmt.Printf("%s:\n", label)
		for _, result := range results {
			if result.Command == label {
				fmt.Printf("  %-8s: Cold: %s, Warm: %s\n", result.Dataset, result.ColdTime, result.WarmTime)
			}
		}
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
