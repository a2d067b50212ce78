package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// dmiDir holds the DMI identification files exported by the kernel.
var dmiDir = "/sys/devices/virtual/dmi/id"

// Host returns "Host: <board vendor> <board name>".
func Host(context.Context) string {
	return boardHost(dmiDir)
}

// boardHost reads the board vendor and name below dir. Both are required.
func boardHost(dir string) string {
	vendor, err := os.ReadFile(filepath.Join(dir, "board_vendor"))
	if err != nil {
		return ""
	}
	board, err := os.ReadFile(filepath.Join(dir, "board_name"))
	if err != nil {
		return ""
	}
	v, b := strings.TrimSpace(string(vendor)), strings.TrimSpace(string(board))
	if v == "" || b == "" {
		return ""
	}
	return "Host: " + v + " " + b
}
