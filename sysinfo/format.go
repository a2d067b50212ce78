// Package sysinfo - Formatting utilities
package sysinfo

import "fmt"

// FormatUptime renders a number of seconds as hours, minutes and seconds.
//
// Parameters:
//   - secs: The uptime in seconds
//
// Returns:
//   - A string like "26hr 3m 9s"; hours are not folded into days
//
// Example: FormatUptime(3725) returns "1hr 2m 5s"
func FormatUptime(secs uint64) string {
	mins := secs / 60
	hours := mins / 60
	return fmt.Sprintf("%dhr %dm %ds", hours, mins%60, secs%60)
}

// TruncateString truncates a string to a maximum length and adds ellipsis if needed.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: Maximum length, in runes, of the resulting string
//
// Returns:
//   - The original string if it's not longer than maxLen
//   - A truncated string with "..." appended if longer than maxLen
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
