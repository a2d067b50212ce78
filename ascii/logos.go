// Package ascii provides the distro logos drawn next to the host information,
// the color-token table used by the logo assets, and width helpers for
// aligning colored text in a terminal.
package ascii

import (
	"embed"
	"path"
	"strings"
)

//go:embed logos/*.txt
var logoFS embed.FS

// Logo is a distro logo as stored in the asset files: one entry per row,
// color tokens not yet substituted.
type Logo struct {
	// ID is the asset name, e.g. "fedora" or "windows_server"
	ID string

	// Lines holds the raw rows of the logo
	Lines []string
}

// Lookup returns the logo registered under id.
//
// Parameters:
//   - id: The logo identifier (asset file name without extension)
//
// Returns:
//   - The logo and true if an asset exists for id
//   - A zero Logo and false otherwise
func Lookup(id string) (Logo, bool) {
	data, err := logoFS.ReadFile(path.Join("logos", id+".txt"))
	if err != nil {
		return Logo{}, false
	}
	text := strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return Logo{ID: id, Lines: strings.Split(text, "\n")}, true
}

// Render substitutes the color tokens of a logo and pads every row to the
// same display width plus gap columns, so that text appended to any row
// starts in the same terminal column.
//
// Parameters:
//   - logo: The logo to render
//   - gap: Number of spaces between the widest row and the appended text
//
// Returns:
//   - The rendered logo, rows separated by "\n"
//   - An empty string if the logo has no rows
func Render(logo Logo, gap int) string {
	if len(logo.Lines) == 0 {
		return ""
	}
	if gap < 0 {
		gap = 0
	}

	rows := make([]string, len(logo.Lines))
	width := 0
	for i, line := range logo.Lines {
		rows[i] = Colorize(line)
		if w := VisibleWidth(rows[i]); w > width {
			width = w
		}
	}

	for i, row := range rows {
		rows[i] = row + strings.Repeat(" ", width-VisibleWidth(row)+gap)
	}
	return strings.Join(rows, "\n")
}
