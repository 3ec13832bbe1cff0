package layout

// layoutAbsolute places absolutely positioned children against the padding
// box of a parent whose border-box size is final. Each child is laid out
// independently; the returned extent is relative to the parent's border box.
func (e *engine) layoutAbsolute(items []blockItem, size Size, border, gutter Edges) Size {
	area := Size{
		Width:  max(size.Width-border.Horizontal()-gutter.Horizontal(), 0),
		Height: max(size.Height-border.Vertical()-gutter.Vertical(), 0),
	}
	origin := Point{X: border.Left, Y: border.Top}

	var extent Size
	for i := range items {
		it := &items[i]
		if it.hidden || !it.isAbsolute() {
			continue
		}
		style := it.style

		padding, brd := resolvePaddingBorder(style, area.Width)
		pb := padding.Add(brd).Sum()
		sizes := resolveBoxSizes(style, area, boxSizingAdjustment(style, pb))
		margin := style.Margin.Resolve(area.Width)
		left := style.Inset.Left.Resolve(area.Width)
		right := style.Inset.Right.Resolve(area.Width)
		top := style.Inset.Top.Resolve(area.Height)
		bottom := style.Inset.Bottom.Resolve(area.Height)

		// Padding and border override any smaller min or max.
		minSize := sizes.min.Or(pb).Max(pb)
		maxSize := sizes.max.Max(pb)

		known := sizes.size
		if !IsDefined(known.Width) && IsDefined(left) && IsDefined(right) {
			known.Width = max(area.Width-orZero(margin.Left)-orZero(margin.Right)-left-right, 0)
		}
		if !IsDefined(known.Height) && IsDefined(top) && IsDefined(bottom) {
			known.Height = max(area.Height-orZero(margin.Top)-orZero(margin.Bottom)-top-bottom, 0)
		}
		known = sizes.withAspectRatio(known.Clamp(minSize, maxSize)).Clamp(minSize, maxSize)

		in := layoutInput{
			known:      known,
			parentSize: area,
			available: AvailableSize{
				Width:  Definite(clamp(area.Width, minSize.Width, maxSize.Width)),
				Height: Definite(clamp(area.Height, minSize.Height, maxSize.Height)),
			},
			mode:   performLayout,
			sizing: contentSize,
		}
		out := e.computeNode(it.id, in)
		final := known.Or(out.size).Clamp(minSize, maxSize)
		if final != out.size {
			// Clamping changed a content-sized axis; lay the subtree out again
			// at the final size so descendants agree with it.
			in.known = final
			out = e.computeNode(it.id, in)
			out.size = final
		}

		m := absoluteMargins(margin, Size{
			Width:  area.Width - final.Width - orZero(left) - orZero(right),
			Height: area.Height - final.Height - orZero(top) - orZero(bottom),
		}, axes{width: IsDefined(left) && IsDefined(right), height: IsDefined(top) && IsDefined(bottom)})

		var loc Point
		switch {
		case IsDefined(left):
			loc.X = origin.X + left + m.Left
		case IsDefined(right):
			loc.X = origin.X + area.Width - final.Width - right - m.Right
		default:
			loc.X = it.staticPosition.X + m.Left
		}
		switch {
		case IsDefined(top):
			loc.Y = origin.Y + top + m.Top
		case IsDefined(bottom):
			loc.Y = origin.Y + area.Height - final.Height - bottom - m.Bottom
		default:
			loc.Y = it.staticPosition.Y + m.Top
		}

		e.tree.SetLayout(it.id, Layout{
			Order:         it.order,
			Location:      loc,
			Size:          final,
			ContentSize:   out.contentSize,
			ScrollbarSize: out.scrollbar,
			Border:        brd,
			Padding:       padding,
			Margin:        m,
		})

		c := contentContribution(loc, out, style)
		extent = Size{Width: max(extent.Width, c.Width), Height: max(extent.Height, c.Height)}
	}
	return extent
}

// absoluteMargins resolves the margins of an absolutely positioned box.
// free is the space left on each axis before margins. Auto margins absorb
// it only when both insets on that axis are set; otherwise they are 0.
func absoluteMargins(margin Edges, free Size, bothInsets axes) Edges {
	free.Width -= orZero(margin.Left) + orZero(margin.Right)
	free.Height -= orZero(margin.Top) + orZero(margin.Bottom)

	m := margin.orZero()
	if bothInsets.width {
		m.Left, m.Right = splitAuto(margin.Left, margin.Right, free.Width)
	}
	if bothInsets.height {
		m.Top, m.Bottom = splitAuto(margin.Top, margin.Bottom, free.Height)
	}
	return m
}

// splitAuto gives free space to the auto sides of an axis. With two auto
// sides and negative free space the start side is 0 and the end side takes
// the overflow.
func splitAuto(start, end, free float32) (float32, float32) {
	switch {
	case !IsDefined(start) && !IsDefined(end):
		if free < 0 {
			return 0, free
		}
		return free / 2, free / 2
	case !IsDefined(start):
		return free, end
	case !IsDefined(end):
		return start, free
	default:
		return start, end
	}
}
