package sysinfo

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// formatMemory renders "Memory: <used> / <total>" in IEC units.
func formatMemory(used, total uint64) string {
	if total == 0 {
		return ""
	}
	if used > total {
		used = total
	}
	return fmt.Sprintf("Memory: %s / %s", humanize.IBytes(used), humanize.IBytes(total))
}
