package sysinfo

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"gofetch/ascii"
)

// logoAliases maps platform identifiers to the logo drawn for them when
// they differ from the logo name.
var logoAliases = map[string]string{
	"archlinux":   "arch",
	"manjaro":     "arch",
	"endeavouros": "arch",
	"raspbian":    "debian",
	"linuxmint":   "ubuntu",
	"pop":         "ubuntu",
}

// DistroLogo returns the logo of the running distro, colored and padded to
// a uniform width plus gap columns, or "" when no logo matches.
func DistroLogo(ctx context.Context, gap int) string {
	platform, _, _, _ := host.PlatformInformationWithContext(ctx)
	logo, ok := ascii.Lookup(logoID(runtime.GOOS, platform, serverEdition()))
	if !ok {
		return ""
	}
	return ascii.Render(logo, gap)
}

// logoID picks the logo asset for a platform.
//
// Parameters:
//   - goos: The runtime operating system (runtime.GOOS)
//   - platform: The platform identifier reported by gopsutil (e.g. "fedora")
//   - server: Whether a Windows host runs a Server edition
//
// Returns:
//   - The logo identifier; unknown Linux distros fall back to "linux",
//     other unknown systems to "" (no logo)
func logoID(goos, platform string, server bool) string {
	if goos == "windows" {
		if server {
			return "windows_server"
		}
		return "windows"
	}

	id := strings.ToLower(strings.TrimSpace(platform))
	if alias, ok := logoAliases[id]; ok {
		id = alias
	}
	if _, ok := ascii.Lookup(id); ok && !strings.HasPrefix(id, "windows") {
		return id
	}
	if goos == "linux" {
		return "linux"
	}
	return ""
}
