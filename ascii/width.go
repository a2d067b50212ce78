package ascii

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI SGR escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// VisibleWidth calculates the display width of a string excluding ANSI escape codes.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - The number of terminal columns s occupies (wide runes count double)
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// StripANSI removes every ANSI color sequence from s.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
