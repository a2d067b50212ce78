package sysinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBoardHost(t *testing.T) {
	dir := t.TempDir()
	if got := boardHost(dir); got != "" {
		t.Fatalf("boardHost without DMI files = %q; want empty", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "board_vendor"), []byte("LENOVO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := boardHost(dir); got != "" {
		t.Fatalf("boardHost with vendor only = %q; want empty", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "board_name"), []byte("20XW0055US\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := boardHost(dir); got != "Host: LENOVO 20XW0055US" {
		t.Fatalf("boardHost = %q", got)
	}
}
