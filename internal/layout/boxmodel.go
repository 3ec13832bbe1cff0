package layout

// resolvePaddingBorder resolves padding and border against the containing
// block width. Both are always definite and never negative.
func resolvePaddingBorder(style *Style, referenceWidth float32) (padding, border Edges) {
	padding = style.Padding.ResolveOrZero(referenceWidth).nonNegative()
	border = style.Border.ResolveOrZero(referenceWidth).nonNegative()
	return padding, border
}

// scrollbarGutter returns the space reserved for scrollbars. A vertical
// scrollbar (overflow-y: scroll) takes width on the right edge and a
// horizontal one (overflow-x: scroll) takes height on the bottom edge.
func scrollbarGutter(style *Style) Edges {
	var gutter Edges
	width := max(style.ScrollbarWidth, 0)
	if style.OverflowY == OverflowScroll {
		gutter.Right = width
	}
	if style.OverflowX == OverflowScroll {
		gutter.Bottom = width
	}
	return gutter
}

// boxSizingAdjustment returns what must be added to an explicit size to
// get a border-box size.
func boxSizingAdjustment(style *Style, paddingBorder Size) Size {
	if style.BoxSizing == BoxSizingContentBox {
		return paddingBorder
	}
	return Size{}
}

// boxSizes holds a node's styled size constraints as border-box lengths.
type boxSizes struct {
	size, min, max Size

	ratio    float32 // 0 when unset
	adjust   Size    // box-sizing adjustment already added to the sizes
	explicit axes    // axes with a styled size
}

// resolveBoxSizes resolves width/height and their min/max against
// reference and converts the results to border-box lengths. The aspect
// ratio is recorded but not applied: a styled axis is clamped before it
// drives the other one (see withAspectRatio).
func resolveBoxSizes(style *Style, reference Size, adjust Size) boxSizes {
	size := Size{
		Width:  style.Width.Resolve(reference.Width),
		Height: style.Height.Resolve(reference.Height),
	}
	minSize := Size{
		Width:  style.MinWidth.Resolve(reference.Width),
		Height: style.MinHeight.Resolve(reference.Height),
	}
	maxSize := Size{
		Width:  style.MaxWidth.Resolve(reference.Width),
		Height: style.MaxHeight.Resolve(reference.Height),
	}

	b := boxSizes{
		adjust:   adjust,
		explicit: axes{width: IsDefined(size.Width), height: IsDefined(size.Height)},
	}
	if style.hasAspectRatio() {
		b.ratio = style.AspectRatio
	}

	b.size = size.Add(adjust)
	b.min = minSize.Add(adjust)
	b.max = maxSize.Add(adjust)
	return b
}

// withAspectRatio applies the ratio to a border-box size. The ratio
// describes the box-sizing box, so the adjustment is removed first.
func (b boxSizes) withAspectRatio(s Size) Size {
	if b.ratio == 0 {
		return s
	}
	inner := applyAspectRatio(s.Sub(b.adjust), b.ratio, b.min.Sub(b.adjust), b.max.Sub(b.adjust), b.explicit)
	return inner.Add(b.adjust)
}

// clampedSize is the styled size clamped by min/max. When both min and
// max are set and max <= min, min is a definite size on that axis.
func (b boxSizes) clampedSize() Size {
	fixed := Size{Width: Undefined, Height: Undefined}
	if IsDefined(b.min.Width) && IsDefined(b.max.Width) && b.max.Width <= b.min.Width {
		fixed.Width = b.min.Width
	}
	if IsDefined(b.min.Height) && IsDefined(b.max.Height) && b.max.Height <= b.min.Height {
		fixed.Height = b.min.Height
	}
	return fixed.Or(b.size.Clamp(b.min, b.max))
}

// preventsCollapseThrough reports whether a box can never let its top and
// bottom margins collapse together.
func preventsCollapseThrough(style *Style, padding, border Edges, sizes boxSizes) bool {
	return style.isScrollContainer() ||
		style.Position == PositionAbsolute ||
		padding.Top > 0 || padding.Bottom > 0 ||
		border.Top > 0 || border.Bottom > 0 ||
		sizes.size.Height > 0 ||
		sizes.min.Height > 0
}
