package layout

// Edges represents resolved lengths for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float32 {
	return e.Top + e.Bottom
}

// Sum returns the horizontal and vertical totals as a Size.
func (e Edges) Sum() Size {
	return Size{Width: e.Horizontal(), Height: e.Vertical()}
}

// Add returns the side-wise sum of e and other.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

func (e Edges) orZero() Edges {
	return Edges{Top: orZero(e.Top), Right: orZero(e.Right), Bottom: orZero(e.Bottom), Left: orZero(e.Left)}
}

// nonNegative clamps every side to at least 0.
func (e Edges) nonNegative() Edges {
	return Edges{Top: max(e.Top, 0), Right: max(e.Right, 0), Bottom: max(e.Bottom, 0), Left: max(e.Left, 0)}
}
