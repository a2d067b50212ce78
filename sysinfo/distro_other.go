//go:build !windows

package sysinfo

func serverEdition() bool {
	return false
}
