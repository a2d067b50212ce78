package sysinfo

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// platformNames maps gopsutil platform identifiers to display names.
var platformNames = map[string]string{
	"arch":      "Arch Linux",
	"nixos":     "NixOS",
	"fedora":    "Fedora",
	"ubuntu":    "Ubuntu",
	"debian":    "Debian",
	"raspbian":  "Raspbian",
	"linuxmint": "Linux Mint",
	"opensuse":  "openSUSE",
	"centos":    "CentOS",
	"redhat":    "Red Hat Enterprise Linux",
	"alpine":    "Alpine Linux",
	"darwin":    "macOS",
	"freebsd":   "FreeBSD",
}

// OS returns "OS: <name> <version> (<edition>) <architecture>".
func OS(ctx context.Context) string {
	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil || platform == "" {
		return ""
	}
	arch, _ := host.KernelArch()
	return formatOS(platform, version, edition(), arch)
}

// formatOS builds the OS line, substituting placeholders for missing parts.
func formatOS(platform, version, edition, arch string) string {
	if edition == "" {
		edition = "Unknown Edition"
	}
	if arch == "" {
		arch = "Unknown Architecture"
	}
	name := displayName(platform)
	if version != "" {
		name += " " + version
	}
	return fmt.Sprintf("OS: %s (%s) %s", name, edition, arch)
}

// displayName turns a platform identifier into something fit for display.
func displayName(platform string) string {
	if name, ok := platformNames[strings.ToLower(platform)]; ok {
		return name
	}
	if platform == "" {
		return platform
	}
	return strings.ToUpper(platform[:1]) + platform[1:]
}

// Kernel returns "Kernel: <release>".
func Kernel(ctx context.Context) string {
	version, err := host.KernelVersionWithContext(ctx)
	version = strings.TrimSpace(version)
	if err != nil || version == "" {
		return ""
	}
	return "Kernel: " + version
}

// Uptime returns "Uptime: <h>hr <m>m <s>s".
func Uptime(ctx context.Context) string {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return ""
	}
	return "Uptime: " + FormatUptime(secs)
}
