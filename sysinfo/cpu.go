package sysinfo

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
)

// maxCPUNameLen bounds the model name so the line fits beside a logo.
const maxCPUNameLen = 48

// CPU returns "CPU: <model> (<n> cores)".
func CPU(ctx context.Context) string {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil || len(infos) == 0 {
		return ""
	}
	cores, _ := cpu.CountsWithContext(ctx, true)
	return formatCPU(infos[0].ModelName, cores)
}

func formatCPU(model string, cores int) string {
	model = strings.Join(strings.Fields(model), " ")
	if model == "" {
		return ""
	}
	model = TruncateString(model, maxCPUNameLen)
	if cores > 0 {
		return fmt.Sprintf("CPU: %s (%d cores)", model, cores)
	}
	return "CPU: " + model
}
