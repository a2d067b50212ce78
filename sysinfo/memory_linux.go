package sysinfo

import (
	"context"

	"github.com/prometheus/procfs"
)

// Memory returns the used and total physical memory from /proc/meminfo.
// Used memory is total minus MemAvailable, matching free(1).
func Memory(context.Context) string {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return ""
	}
	info, err := fs.Meminfo()
	if err != nil || info.MemTotal == nil || info.MemAvailable == nil {
		return ""
	}
	total := *info.MemTotal * 1024
	available := *info.MemAvailable * 1024
	if available > total {
		available = total
	}
	return formatMemory(total-available, total)
}
