// Package measure provides text measure functions for leaf nodes.
//
// A Measurer reports the advance of a run of text and the height of a line.
// Measure wraps text greedily at spaces and U+200B ZERO WIDTH SPACE:
// min-content puts every word on its own line, max-content never wraps,
// and a definite width wraps at that width.
package measure

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-blockflow"
)

// Measurer sizes runs of text that contain no break opportunities.
type Measurer interface {
	// Advance returns the width of s on a single line.
	Advance(s string) float32
	// LineHeight returns the height of one line.
	LineHeight() float32
}

var unlimited = float32(math.Inf(1))

// Measure returns the size of text under the given constraints. Known
// dimensions are returned as is; a known width is also the wrap width.
func Measure(m Measurer, text string, known blockflow.Size, available blockflow.AvailableSize) blockflow.Size {
	tokens := tokenize(m, text)
	if len(tokens) == 0 {
		return known.Or(blockflow.Size{})
	}

	limit := unlimited
	switch {
	case blockflow.IsDefined(known.Width):
		limit = known.Width
	case available.Width.IsMinContent():
		limit = 0
	case available.Width.IsDefinite():
		limit = available.Width.Value()
	}

	width, lines := wrap(tokens, limit)
	return known.Or(blockflow.Size{Width: width, Height: float32(lines) * m.LineHeight()})
}

// Func adapts m into a MeasureFunc for a leaf holding text.
func Func(m Measurer, text string) blockflow.MeasureFunc {
	return func(known blockflow.Size, available blockflow.AvailableSize) blockflow.Size {
		return Measure(m, text, known, available)
	}
}

// ByName returns the measurer configured by name: "glyph" (a square grid
// of glyphSize), "cells" (terminal cells) or "basic" (the 7x13 bitmap face).
func ByName(name string, glyphSize float32) (Measurer, error) {
	switch name {
	case "glyph", "":
		if glyphSize <= 0 {
			return nil, fmt.Errorf("glyph size must be positive, got %g", glyphSize)
		}
		return Glyph{Size: glyphSize}, nil
	case "cells":
		return Cells{}, nil
	case "basic":
		return Basic(), nil
	default:
		return nil, fmt.Errorf("unknown measurer %q", name)
	}
}
