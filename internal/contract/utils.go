package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Scoring label constants.
const (
	EliteValue   = "Elite"   // Standout candidate
	StrongValue  = "Strong"  // Above the peer group
	AverageValue = "Average" // Around the peer group mean
	BelowValue   = "Below"   // Under the peer group
)

// Color variables for console output.
var (
	EliteColor   = color.New(color.FgGreen, color.Bold) // eliteColor marks the clear targets.
	StrongColor  = color.New(color.FgCyan, color.Bold)  // strongColor marks solid options.
	AverageColor = color.New(color.FgYellow)            // averageColor is neutral, not bold.
	BelowColor   = color.New(color.FgRed)               // belowColor marks candidates to pass on.
)

// GetColorLabel returns a colored text label for console output (table).
// It uses the plain label to determine the string, and then applies the
// appropriate color.
func GetColorLabel(label string) string {
	switch label {
	case EliteValue:
		return EliteColor.Sprint(label)
	case StrongValue:
		return StrongColor.Sprint(label)
	case AverageValue:
		return AverageColor.Sprint(label)
	default: // "Below"
		return BelowColor.Sprint(label)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunDBFilePath returns the path to the SQLite DB file for run storage.
func GetRunDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".fullback_runs.db"
	}
	return filepath.Join(homeDir, ".fullback_runs.db")
}

// TruncateName truncates a player name to a maximum width with ellipsis
// suffix. Requires maxWidth > 3 so there is space for the ellipsis and at
// least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
