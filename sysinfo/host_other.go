//go:build !linux && !windows

package sysinfo

import "context"

// Host is not available on this platform.
func Host(context.Context) string {
	return ""
}
