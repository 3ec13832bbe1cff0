package layout

import "fmt"

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float32
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Size is a width/height pair. Either axis may be Undefined.
type Size struct {
	Width, Height float32
}

// UndefinedSize returns a Size with both axes unknown.
func UndefinedSize() Size {
	return Size{Width: Undefined, Height: Undefined}
}

// IsDefinite reports whether both axes are known.
func (s Size) IsDefinite() bool {
	return IsDefined(s.Width) && IsDefined(s.Height)
}

// Or fills undefined axes of s from other.
func (s Size) Or(other Size) Size {
	return Size{Width: orElse(s.Width, other.Width), Height: orElse(s.Height, other.Height)}
}

// Add adds other per axis; undefined axes of other count as 0.
func (s Size) Add(other Size) Size {
	return Size{Width: maybeAdd(s.Width, other.Width), Height: maybeAdd(s.Height, other.Height)}
}

// Sub subtracts other per axis; undefined axes of other count as 0.
func (s Size) Sub(other Size) Size {
	return Size{Width: maybeSub(s.Width, other.Width), Height: maybeSub(s.Height, other.Height)}
}

// Max raises each defined axis to at least other.
func (s Size) Max(other Size) Size {
	return Size{Width: maybeMax(s.Width, other.Width), Height: maybeMax(s.Height, other.Height)}
}

// Clamp applies clamp per axis, with min winning over max.
func (s Size) Clamp(minSize, maxSize Size) Size {
	return Size{
		Width:  clamp(s.Width, minSize.Width, maxSize.Width),
		Height: clamp(s.Height, minSize.Height, maxSize.Height),
	}
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func (s Size) orZero() Size {
	return Size{Width: orZero(s.Width), Height: orZero(s.Height)}
}
