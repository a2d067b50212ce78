package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Shell returns "Shell: <name>" for the user's login shell.
func Shell(context.Context) string {
	return formatShell(runtime.GOOS, os.Getenv)
}

// formatShell resolves the shell from the environment. On Windows, where
// SHELL is normally unset, PowerShell is recognised by PSModulePath and
// COMSPEC is used as the fallback.
func formatShell(goos string, getenv func(string) string) string {
	shell := getenv("SHELL")
	if shell == "" && goos == "windows" {
		if getenv("PSModulePath") != "" {
			shell = "PowerShell"
		} else {
			shell = getenv("COMSPEC")
		}
	}
	shell = strings.TrimSpace(shell)
	if shell == "" {
		return ""
	}
	if goos == "windows" {
		shell = strings.ReplaceAll(shell, `\`, "/")
	}
	return "Shell: " + filepath.Base(shell)
}
