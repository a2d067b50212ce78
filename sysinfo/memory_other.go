//go:build !linux

package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"
)

// Memory returns the used and total physical memory.
func Memory(ctx context.Context) string {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return ""
	}
	return formatMemory(vm.Used, vm.Total)
}
