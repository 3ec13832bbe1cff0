package layout

// Rect is an axis-aligned box: the origin at (X, Y) and its extent.
// Boxes reported in a Layout are relative to the parent's border box.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect returns the box at (x, y) with the given extent.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Origin is the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Extent is the width and height as a Size.
func (r Rect) Extent() Size { return Size{Width: r.Width, Height: r.Height} }

// Right is the first x past the box.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom is the first y past the box.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Contains reports whether (x, y) falls in the half-open box
// [X, Right) x [Y, Bottom). Zero-sized boxes contain nothing.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && y >= r.Y && x < r.Right() && y < r.Bottom()
}

// Inset shrinks the box by edges, as when going from the border box to the
// padding box. The extent may become negative for oversized edges.
func (r Rect) Inset(edges Edges) Rect {
	return NewRect(
		r.X+edges.Left,
		r.Y+edges.Top,
		r.Width-edges.Horizontal(),
		r.Height-edges.Vertical(),
	)
}

// Translate moves the box by offset.
func (r Rect) Translate(offset Point) Rect {
	r.X += offset.X
	r.Y += offset.Y
	return r
}
