//go:build windows

package sysinfo

import (
	"strings"

	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// getRegistryString is a helper function to safely read string values from the Windows registry.
//
// Parameters:
//   - key: The root registry key (e.g., registry.LOCAL_MACHINE)
//   - path: The registry path to open
//   - valueName: The name of the value to read
//
// Returns:
//   - The trimmed string value if successful
//   - An empty string if the key, path, or value doesn't exist or can't be read
func getRegistryString(key registry.Key, path string, valueName string) string {
	k, err := registry.OpenKey(key, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

// isWindowsServer determines if the current OS is a Windows Server edition.
//
// Detection is based on the ProductName registry value containing "Server".
func isWindowsServer() bool {
	productName := getRegistryString(registry.LOCAL_MACHINE, currentVersionKey, "ProductName")
	return strings.Contains(strings.ToLower(productName), "server")
}
