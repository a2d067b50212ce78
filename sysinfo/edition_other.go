//go:build !linux && !windows

package sysinfo

func edition() string {
	return ""
}
