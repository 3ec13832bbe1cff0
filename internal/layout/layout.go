package layout

// Layout holds the computed geometry of a node after layout calculation.
type Layout struct {
	// Order is the node's index among its parent's children.
	Order uint32

	// Location is the border-box origin relative to the parent's
	// border-box origin.
	Location Point

	// Size is the border-box size.
	Size Size

	// ContentSize is the scrollable extent of the node's content measured
	// from its border-box origin, including children that overflow and the
	// trailing padding and border.
	ContentSize Size

	// ScrollbarSize is the space reserved for scrollbars: Width on the
	// right edge, Height on the bottom edge.
	ScrollbarSize Size

	Border  Edges
	Padding Edges
	Margin  Edges
}

// BorderBox returns the border box relative to the parent's border box.
func (l Layout) BorderBox() Rect {
	return NewRect(l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height)
}

// PaddingBox returns the border box minus borders. Absolutely positioned
// children are placed against it.
func (l Layout) PaddingBox() Rect {
	return l.BorderBox().Inset(l.Border)
}

// ContentBox returns the padding box minus padding and scrollbar gutters.
// In-flow children are placed inside it.
func (l Layout) ContentBox() Rect {
	return l.PaddingBox().Inset(l.Padding).Inset(Edges{
		Right:  l.ScrollbarSize.Width,
		Bottom: l.ScrollbarSize.Height,
	})
}
