package layout

// contentBasedWidth returns the border-box width in-flow children need
// under the given inline space: the widest child plus its margins.
// Children without a styled width are measured under min-content height.
func (e *engine) contentBasedWidth(items []blockItem, available AvailableSpace) float32 {
	var width float32
	for i := range items {
		it := &items[i]
		if it.hidden || it.isAbsolute() {
			continue
		}

		// Percentages of an indefinite containing block count as 0.
		margin := it.style.Margin.ResolveOrZero(available.Value())
		marginX := margin.Horizontal()

		childWidth := it.sizes.withAspectRatio(it.sizes.clampedSize()).Width
		if !IsDefined(childWidth) {
			out := e.computeNode(it.id, layoutInput{
				known:      Size{Width: Undefined, Height: it.sizes.clampedSize().Height},
				parentSize: UndefinedSize(),
				available:  AvailableSize{Width: available.Sub(marginX), Height: MinContent},
				mode:       computeSize,
				sizing:     inherentSize,
				collapse:   collapseFlags{start: true, end: true},
			})
			childWidth = out.size.Width
		}
		width = max(width, max(childWidth, it.paddingBorder.Width)+marginX)
	}
	return width
}

// MeasureNode computes the border-box size id would take as a layout root
// under available, without writing any Layout. Use MinContent or
// MaxContent to query intrinsic sizes.
func MeasureNode(tree Tree, id NodeID, available AvailableSize, opts ...Option) Size {
	e := newEngine(tree, opts)
	style := tree.LayoutStyle(id)
	if style.Display == DisplayNone {
		return Size{}
	}
	in, _ := rootInput(style, available, computeSize)
	return e.computeNode(id, in).size
}
