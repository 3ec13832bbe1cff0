package layout

// computeLeaf sizes a node without children from its styles and its
// measure function. A missing measure function measures as 0x0.
func (e *engine) computeLeaf(id NodeID, style *Style, in layoutInput) layoutOutput {
	parent := in.parentSize
	padding, border := resolvePaddingBorder(style, parent.Width)
	margin := style.Margin.ResolveOrZero(parent.Width)
	gutter := scrollbarGutter(style)
	pb := padding.Add(border).Sum()
	inset := padding.Add(border).Add(gutter)

	sizes := resolveBoxSizes(style, parent, boxSizingAdjustment(style, pb))
	size := in.known
	if in.sizing == inherentSize {
		size = sizes.withAspectRatio(size.Or(sizes.size))
	} else {
		// The caller already folded styled sizes and constraints into known.
		sizes.min, sizes.max = UndefinedSize(), UndefinedSize()
		sizes.ratio = 0
	}

	available := AvailableSize{
		Width:  leafAvailable(in.available.Width, size.Width, margin.Horizontal(), sizes.min.Width, sizes.max.Width, inset.Horizontal()),
		Height: leafAvailable(in.available.Height, size.Height, margin.Vertical(), sizes.min.Height, sizes.max.Height, inset.Vertical()),
	}

	known := size.Sub(inset.Sum()).Max(Size{})
	measured := known.orZero()
	if !size.IsDefinite() {
		if measure := e.tree.LayoutMeasure(id); measure != nil {
			measured = sanitize(known.Or(measure(known, available)))
		}
	}

	final := size.Or(measured.Add(inset.Sum())).Clamp(sizes.min, sizes.max)
	if sizes.ratio != 0 && !IsDefined(size.Width) && !IsDefined(size.Height) {
		// Content drove the width; the ratio may only grow the height.
		derived := sizes.withAspectRatio(Size{Width: final.Width, Height: Undefined})
		final.Width = derived.Width
		final.Height = max(final.Height, derived.Height)
	}
	final = final.Max(pb)

	return layoutOutput{
		size:        final,
		contentSize: measured.Add(pb),
		scrollbar:   gutterSize(gutter),
		collapsesThrough: !preventsCollapseThrough(style, padding, border, sizes) &&
			final.Height == 0 && measured.Height == 0,
	}
}

// leafAvailable is the space offered to a measure function on one axis:
// the known size when there is one, otherwise the parent's offer minus
// margins, clamped and shrunk to the content box.
func leafAvailable(offered AvailableSpace, size, marginSum, minV, maxV, insetSum float32) AvailableSpace {
	space := offered.Sub(marginSum)
	if IsDefined(size) {
		space = Definite(size)
	}
	if !space.IsDefinite() {
		return space
	}
	return Definite(max(clamp(space.Value(), minV, maxV)-insetSum, 0))
}

// sanitize maps negative or undefined measurements to 0.
func sanitize(s Size) Size {
	if !IsDefined(s.Width) || s.Width < 0 {
		s.Width = 0
	}
	if !IsDefined(s.Height) || s.Height < 0 {
		s.Height = 0
	}
	return s
}
