//go:build windows

package sysinfo

import "golang.org/x/sys/windows/registry"

// edition reads the Windows edition (e.g. "Professional") from the registry.
func edition() string {
	return getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "EditionID")
}
