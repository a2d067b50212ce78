//go:build windows

package sysinfo

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sys/windows/registry"
)

// Host returns "Host: <manufacturer> <model>".
//
// Tries PowerShell/CIM first, then the SystemInformation and BIOS registry keys.
func Host(ctx context.Context) string {
	var cs struct {
		Manufacturer string
		Model        string
	}
	psCmd := "Get-CimInstance Win32_ComputerSystem | Select-Object -First 1 -Property Manufacturer,Model | ConvertTo-Json -Compress"
	if err := runPowerShellJSON(ctx, psCmd, 1500*time.Millisecond, &cs); err == nil {
		if model := joinNonEmpty(cs.Manufacturer, cs.Model); model != "" {
			return "Host: " + model
		}
	}

	manufacturer := getRegistryString(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemManufacturer")
	model := getRegistryString(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemProductName")
	if manufacturer == "" {
		manufacturer = getRegistryString(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, "SystemManufacturer")
	}
	if model == "" {
		model = getRegistryString(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, "SystemProductName")
	}

	if joined := joinNonEmpty(manufacturer, model); joined != "" {
		return "Host: " + joined
	}
	return ""
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
