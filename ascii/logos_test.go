package ascii

import (
	"strings"
	"testing"
)

func TestLookupKnownLogos(t *testing.T) {
	for _, id := range []string{"nixos", "fedora", "arch", "debian", "ubuntu", "linux", "windows", "windows_server"} {
		logo, ok := Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%q) found nothing", id)
		}
		if len(logo.Lines) == 0 {
			t.Fatalf("Lookup(%q) returned an empty logo", id)
		}
		if strings.HasSuffix(logo.Lines[len(logo.Lines)-1], "\n") {
			t.Fatalf("Lookup(%q) kept a trailing newline", id)
		}
	}
	if _, ok := Lookup("templeos"); ok {
		t.Fatalf("Lookup of an unknown id should fail")
	}
}

func TestColorize(t *testing.T) {
	if got := Colorize("NREDx BWHTy"); got != "\033[31mx \033[97my" {
		t.Fatalf("Colorize failed: got %q", got)
	}
	if got := Colorize("plain"); got != "plain" {
		t.Fatalf("Colorize changed plain text: got %q", got)
	}
}

func TestRenderPadsToCommonWidth(t *testing.T) {
	logo := Logo{ID: "test", Lines: []string{"NRED#", "NGRN###", ""}}
	rows := strings.Split(Render(logo, 2), "\n")
	if len(rows) != 3 {
		t.Fatalf("Render produced %d rows; want 3", len(rows))
	}
	for i, row := range rows {
		if w := VisibleWidth(row); w != 5 {
			t.Fatalf("row %d width = %d; want 5 (%q)", i, w, row)
		}
		if strings.Contains(row, "NRED") || strings.Contains(row, "NGRN") {
			t.Fatalf("row %d still has color tokens: %q", i, row)
		}
	}
	if Render(Logo{}, 2) != "" {
		t.Fatalf("Render of an empty logo should be empty")
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"abc", 3},
		{"\033[31mabc\033[0m", 3},
		{"日本", 4},
		{"", 0},
	}
	for _, tc := range tests {
		if got := VisibleWidth(tc.in); got != tc.want {
			t.Fatalf("VisibleWidth(%q) = %d; want %d", tc.in, got, tc.want)
		}
	}
}
