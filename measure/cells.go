package measure

import (
	"unicode"

	"golang.org/x/text/width"
)

// Cells measures text in terminal cells: one row per line, one column per
// narrow rune and two per wide rune.
type Cells struct{}

func (Cells) Advance(s string) float32 {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return float32(n)
}

func (Cells) LineHeight() float32 {
	return 1
}

// RuneWidth returns the display width of a rune in terminal cells.
// Returns 2 for East Asian wide and fullwidth characters (CJK, most emoji),
// 0 for control characters and combining marks, and 1 otherwise.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7f || r == zeroWidthSpace || unicode.Is(unicode.Mn, r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
