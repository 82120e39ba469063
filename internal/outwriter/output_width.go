// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/lmarsden/fullback/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNameWidth calculates the maximum width for player names in table
// output based on terminal width and table configuration.
func GetMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 35 // Rank + League + Score + Label with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 50 // Pillar, bonus, age and minutes columns with formatting
	}

	// Add feasibility column
	if cfg.ShowFeasibility {
		baseWidth += 8
	}

	// Add explain column
	if cfg.Explain {
		baseWidth += 35 // Flags column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	// Calculate available space for the player name
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 40 {
		// Maximum name width to keep the table compact
		return 40
	}
	return available
}
