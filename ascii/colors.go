package ascii

import "strings"

// Reset restores the terminal's default attributes.
const Reset = "\033[0m"

// colorTokens maps the short color names embedded in logo assets to their
// ANSI escape sequences. N* are the normal colors, B* the bright ones.
var colorTokens = []string{
	"NBLK", "\033[30m",
	"NRED", "\033[31m",
	"NGRN", "\033[32m",
	"NYLW", "\033[33m",
	"NBLU", "\033[34m",
	"NMAG", "\033[35m",
	"NCYN", "\033[36m",
	"NWHT", "\033[37m",

	"BBLK", "\033[90m",
	"BRED", "\033[91m",
	"BGRN", "\033[92m",
	"BYLW", "\033[93m",
	"BBLU", "\033[94m",
	"BMAG", "\033[95m",
	"BCYN", "\033[96m",
	"BWHT", "\033[97m",
}

var tokenReplacer = strings.NewReplacer(colorTokens...)

// Colorize replaces every color token in s with its escape sequence.
func Colorize(s string) string {
	return tokenReplacer.Replace(s)
}

