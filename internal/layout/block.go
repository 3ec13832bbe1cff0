package layout

// blockItem is per-child scratch state for one block layout pass.
type blockItem struct {
	id     NodeID
	order  uint32
	style  *Style
	hidden bool

	// Resolved against the parent's content box.
	sizes           boxSizes
	padding, border Edges
	paddingBorder   Size

	// Where an absolutely positioned child would have been placed in flow,
	// relative to the parent's border box.
	staticPosition Point
}

func (it *blockItem) isAbsolute() bool {
	return it.style.Position == PositionAbsolute
}

// collectItems reads the children once. display:none children are kept
// as hidden items so their subtrees can be zeroed.
func (e *engine) collectItems(children []NodeID) []blockItem {
	items := make([]blockItem, len(children))
	for i, id := range children {
		style := e.tree.LayoutStyle(id)
		items[i] = blockItem{
			id:     id,
			order:  uint32(i),
			style:  style,
			hidden: style.Display == DisplayNone,
		}
	}
	return items
}

// resolveItems resolves child sizes and box model against the content box.
func resolveItems(items []blockItem, inner Size) {
	for i := range items {
		it := &items[i]
		if it.hidden {
			continue
		}
		it.padding, it.border = resolvePaddingBorder(it.style, inner.Width)
		it.paddingBorder = it.padding.Add(it.border).Sum()
		it.sizes = resolveBoxSizes(it.style, inner, boxSizingAdjustment(it.style, it.paddingBorder))
	}
}

// computeBlock lays out a node with children as a block formatting
// context: in-flow children stack vertically with collapsing margins,
// then absolutely positioned children are placed against the padding box.
func (e *engine) computeBlock(style *Style, children []NodeID, in layoutInput) layoutOutput {
	parent := in.parentSize
	padding, border := resolvePaddingBorder(style, parent.Width)
	gutter := scrollbarGutter(style)
	pb := padding.Add(border).Sum()
	inset := padding.Add(border).Add(gutter)
	sizes := resolveBoxSizes(style, parent, boxSizingAdjustment(style, pb))
	prevents := preventsCollapseThrough(style, padding, border, sizes)

	known := in.known
	if in.sizing == inherentSize {
		known = known.Or(sizes.clampedSize())
	}
	known = known.Max(pb)
	if in.mode == computeSize && prevents && known.IsDefinite() {
		return layoutOutput{size: known, scrollbar: gutterSize(gutter)}
	}

	items := e.collectItems(children)

	width := known.Width
	if !IsDefined(width) {
		resolveItems(items, known.Sub(inset.Sum()))
		width = e.contentBasedWidth(items, in.available.Width.Sub(inset.Horizontal())) + inset.Horizontal()
		width = max(clamp(width, sizes.min.Width, sizes.max.Width), pb.Width)
	}
	height := known.Height
	if !IsDefined(height) && sizes.ratio != 0 {
		derived := sizes.withAspectRatio(Size{Width: width, Height: Undefined})
		width = max(derived.Width, pb.Width)
		height = maybeMax(derived.Height, pb.Height)
	}
	if in.mode == computeSize && prevents && IsDefined(height) {
		return layoutOutput{size: Size{Width: width, Height: height}, scrollbar: gutterSize(gutter)}
	}

	inner := Size{Width: max(width-inset.Horizontal(), 0), Height: maybeSub(height, inset.Vertical())}
	resolveItems(items, inner)

	own := collapseFlags{
		start: in.collapse.start && !style.isScrollContainer() && style.Position == PositionRelative &&
			padding.Top == 0 && border.Top == 0,
		end: in.collapse.end && !style.isScrollContainer() && style.Position == PositionRelative &&
			padding.Bottom == 0 && border.Bottom == 0 && !IsDefined(sizes.size.Height),
	}
	flow := e.layoutInFlow(items, inset, inner, style.TextAlign, own, in.mode)

	if !IsDefined(height) {
		height = max(clamp(flow.height, sizes.min.Height, sizes.max.Height), pb.Height)
	}
	size := Size{Width: width, Height: height}

	extent := flow.extent
	if in.mode == performLayout {
		abs := e.layoutAbsolute(items, size, border, gutter)
		extent = Size{Width: max(extent.Width, abs.Width), Height: max(extent.Height, abs.Height)}
		for i := range items {
			if items[i].hidden {
				e.hideSubtree(items[i].id, items[i].order)
			}
		}
	}

	out := layoutOutput{
		size: size,
		contentSize: Size{
			Width:  max(extent.Width+padding.Right+border.Right, pb.Width),
			Height: max(extent.Height+padding.Bottom+border.Bottom, pb.Height),
		},
		scrollbar:        gutterSize(gutter),
		collapsesThrough: !prevents && flow.allCollapseThrough && height == 0,
	}
	if own.start {
		out.topMargin = flow.firstTop
	}
	if own.end {
		out.bottomMargin = flow.lastBottom
	}
	return out
}

// flowResult summarizes one pass over in-flow children.
type flowResult struct {
	height             float32 // border-box height implied by the content
	extent             Size    // farthest child edge from the border-box origin
	firstTop           CollapsibleMarginSet
	lastBottom         CollapsibleMarginSet
	allCollapseThrough bool
}

// layoutInFlow stacks in-flow children inside the content box and records
// static positions for absolutely positioned ones. Margins adjoining the
// content edges escape through the parent only when own allows it.
func (e *engine) layoutInFlow(items []blockItem, inset Edges, inner Size, align TextAlign, own collapseFlags, mode runMode) flowResult {
	res := flowResult{allCollapseThrough: true}

	committedY := inset.Top
	staticY := committedY
	var active CollapsibleMarginSet
	collapsingWithFirst := true

	for i := range items {
		it := &items[i]
		if it.hidden {
			continue
		}
		if it.isAbsolute() {
			it.staticPosition = Point{X: inset.Left, Y: staticY}
			continue
		}

		margin := it.style.Margin.Resolve(inner.Width)
		marginX := orZero(margin.Left) + orZero(margin.Right)

		// A styled height may fix the width through the aspect ratio
		// before the width stretches.
		known := it.sizes.withAspectRatio(it.sizes.clampedSize())
		if !IsDefined(known.Width) {
			known.Width = clamp(inner.Width-marginX, it.sizes.min.Width, it.sizes.max.Width)
		}

		out := e.computeNode(it.id, layoutInput{
			known:      known,
			parentSize: inner,
			available:  AvailableSize{Width: Definite(inner.Width - marginX), Height: MinContent},
			mode:       mode,
			sizing:     inherentSize,
			collapse:   collapseFlags{start: true, end: true},
		})

		top := out.topMargin.CollapseWithMargin(orZero(margin.Top))
		bottom := out.bottomMargin.CollapseWithMargin(orZero(margin.Bottom))

		// Auto margins share the free space; without them TextAlign may
		// shift a narrow child.
		left, right := autoMargins(margin.Left, margin.Right, inner.Width-out.size.Width-marginX)
		x := inset.Left + left
		if outer := out.size.Width + left + right; outer < inner.Width {
			switch align {
			case TextAlignRight:
				x += inner.Width - outer
			case TextAlignCenter:
				x += (inner.Width - outer) / 2
			}
		}

		var offsetY float32
		if !collapsingWithFirst || !own.start {
			offsetY = active.CollapseWithSet(top).Resolve()
		}
		loc := Point{X: x, Y: committedY + offsetY}.Add(relativeOffset(it.style, inner))

		if mode == performLayout {
			e.tree.SetLayout(it.id, Layout{
				Order:         it.order,
				Location:      loc,
				Size:          out.size,
				ContentSize:   out.contentSize,
				ScrollbarSize: out.scrollbar,
				Border:        it.border,
				Padding:       it.padding,
				Margin:        Edges{Top: orZero(margin.Top), Right: right, Bottom: orZero(margin.Bottom), Left: left},
			})
		}

		c := contentContribution(loc, out, it.style)
		res.extent = Size{Width: max(res.extent.Width, c.Width), Height: max(res.extent.Height, c.Height)}
		res.allCollapseThrough = res.allCollapseThrough && out.collapsesThrough

		if collapsingWithFirst {
			res.firstTop = res.firstTop.CollapseWithSet(top)
			if out.collapsesThrough {
				res.firstTop = res.firstTop.CollapseWithSet(bottom)
			} else {
				collapsingWithFirst = false
			}
		}

		if out.collapsesThrough {
			active = active.CollapseWithSet(top).CollapseWithSet(bottom)
			staticY = committedY + out.size.Height + offsetY
		} else {
			committedY += out.size.Height + offsetY
			active = bottom
			staticY = committedY + active.Resolve()
		}
	}

	res.lastBottom = active
	if !own.end {
		committedY += active.Resolve()
	}
	res.height = max(committedY+inset.Bottom, 0)
	return res
}

// autoMargins resolves horizontal margins of an in-flow child. Undefined
// sides are auto and split the non-negative free space.
func autoMargins(left, right, free float32) (float32, float32) {
	free = max(free, 0)
	switch {
	case !IsDefined(left) && !IsDefined(right):
		return free / 2, free / 2
	case !IsDefined(left):
		return free, right
	case !IsDefined(right):
		return left, free
	default:
		return left, right
	}
}

// relativeOffset is the visual shift insets give a position:relative box.
// left wins over right and top over bottom.
func relativeOffset(style *Style, containing Size) Point {
	if style.Position != PositionRelative {
		return Point{}
	}
	var p Point
	if left := style.Inset.Left.Resolve(containing.Width); IsDefined(left) {
		p.X = left
	} else if right := style.Inset.Right.Resolve(containing.Width); IsDefined(right) {
		p.X = -right
	}
	if top := style.Inset.Top.Resolve(containing.Height); IsDefined(top) {
		p.Y = top
	} else if bottom := style.Inset.Bottom.Resolve(containing.Height); IsDefined(bottom) {
		p.Y = -bottom
	}
	return p
}
