package measure

import "unicode/utf8"

// Glyph measures every rune as a Size x Size square, like the Ahem test
// font used by layout fixtures.
type Glyph struct {
	Size float32
}

func (g Glyph) Advance(s string) float32 {
	return float32(utf8.RuneCountInString(s)) * g.Size
}

func (g Glyph) LineHeight() float32 {
	return g.Size
}
