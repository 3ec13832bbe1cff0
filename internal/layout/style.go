package layout

import "math"

// Display controls whether a node generates a box.
type Display uint8

const (
	DisplayBlock Display = iota // Participates in block flow
	DisplayNone                 // Removed from layout together with its subtree
)

// Position selects in-flow or absolute placement.
type Position uint8

const (
	PositionRelative Position = iota // In flow; insets offset the placed box
	PositionAbsolute                 // Out of flow; placed against the parent's padding box
)

// BoxSizing selects which box explicit sizes describe.
type BoxSizing uint8

const (
	BoxSizingBorderBox  BoxSizing = iota // Sizes include padding and border
	BoxSizingContentBox                  // Sizes exclude padding and border
)

// Overflow controls clipping and scrollbar reservation on one axis.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll // Always reserves a scrollbar gutter
)

// IsScrollContainer reports whether the value makes the box a scroll container.
func (o Overflow) IsScrollContainer() bool {
	return o != OverflowVisible
}

// TextAlign positions block children that are narrower than the content box.
type TextAlign uint8

const (
	TextAlignAuto   TextAlign = iota // Children start at the content-box left edge
	TextAlignLeft                    // Same as Auto
	TextAlignRight                   // Children end at the content-box right edge
	TextAlignCenter                  // Children are centered in the content box
)

// Style contains all layout properties for a node.
type Style struct {
	Display   Display
	Position  Position
	BoxSizing BoxSizing

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// AspectRatio is width divided by height. Zero, negative or NaN
	// disables it.
	AspectRatio float32

	// Spacing. Percentages resolve against the containing block width.
	Inset   EdgeValues
	Margin  EdgeValues
	Padding EdgeValues
	Border  EdgeValues

	// Scroll containers
	OverflowX      Overflow
	OverflowY      Overflow
	ScrollbarWidth float32

	TextAlign TextAlign
}

// DefaultStyle returns a Style with CSS initial values: a relative block
// box with auto sizes and insets and zero margins, padding and border.
func DefaultStyle() Style {
	zero := EdgeValuesAll(Length(0))
	return Style{
		Width:     Auto(),
		Height:    Auto(),
		MinWidth:  Auto(), // No minimum
		MinHeight: Auto(), // No minimum
		MaxWidth:  Auto(), // No maximum
		MaxHeight: Auto(), // No maximum
		Inset:     EdgeValuesAll(Auto()),
		Margin:    zero,
		Padding:   zero,
		Border:    zero,
	}
}

// hasAspectRatio reports whether AspectRatio is usable.
func (s *Style) hasAspectRatio() bool {
	return s.AspectRatio > 0 && !math.IsInf(float64(s.AspectRatio), 1)
}

// isScrollContainer reports whether either axis clips its content.
func (s *Style) isScrollContainer() bool {
	return s.OverflowX.IsScrollContainer() || s.OverflowY.IsScrollContainer()
}
