package fetch

import (
	"strings"

	"gofetch/ascii"
)

// Compose turns a ResultSet into the rows to print.
//
// When the set carries a logo, its rows seed the output, each followed by a
// color reset, and text fields are appended to them one per row. Fields that
// outnumber the logo rows get rows of their own, indented by the logo width
// so they stay aligned with the text beside the logo. Built-in fields come
// first in DisplayOrder, plugin outputs after them in discovery order. Logo
// rows left without a field are returned as they are.
func Compose(rs ResultSet) []string {
	var lines []string
	pad := ""
	if logo, ok := rs.Logo(); ok {
		width := 0
		for _, row := range strings.Split(logo, "\n") {
			lines = append(lines, row+ascii.Reset)
			if w := ascii.VisibleWidth(row); w > width {
				width = w
			}
		}
		pad = strings.Repeat(" ", width)
	}

	idx := 0
	place := func(text string) {
		if text == "" {
			return
		}
		if idx < len(lines) {
			lines[idx] += text
		} else {
			lines = append(lines, pad+text)
		}
		idx++
	}

	for _, kind := range DisplayOrder {
		place(rs.Fields[kind])
	}
	for _, text := range rs.Plugins {
		place(text)
	}
	return lines
}
