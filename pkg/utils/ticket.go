package utils

import (
	"fmt"
)

// FormatTicketNumber builds the human-readable ticket number:
// prefix + four-digit year + hyphen + zero-padded sequence.
// Example: GT2025-000123
func FormatTicketNumber(prefix string, year int, seq int64, width int) string {
	if width <= 0 {
		width = 6
	}

	return fmt.Sprintf("%s%d-%0*d", prefix, year, width, seq)
}
