//go:build windows

package sysinfo

import (
	"context"
	"encoding/json"
	"os/exec"
	"syscall"
	"time"
)

// runPowerShell runs a PowerShell command with a timeout and returns raw
// stdout bytes. The command is executed with -NoProfile and the window hidden.
func runPowerShell(ctx context.Context, cmd string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	return c.Output()
}

// runPowerShellJSON runs a PowerShell command expected to emit JSON and
// unmarshals it into v.
func runPowerShellJSON(ctx context.Context, cmd string, timeout time.Duration, v interface{}) error {
	out, err := runPowerShell(ctx, cmd, timeout)
	if err != nil {
		return err
	}
	return json.Unmarshal(out, v)
}
