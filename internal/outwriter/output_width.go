package outwriter

import (
	"os"

	"github.com/huangsam/logbook/internal/contract"
	"golang.org/x/term"
)

// GetMaxCellWidth calculates the maximum width for free-text table cells
// (student names, locations, building names) based on terminal width and
// table configuration.
func GetMaxCellWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the count columns, borders, separators, and padding.
	baseWidth := 30

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable cell width
		return 15
	}
	if available > 60 {
		// Maximum cell width to keep rows scannable
		return 60
	}
	return available
}
