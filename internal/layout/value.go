package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content or the containing block
	UnitLength              // Absolute length in layout units
	UnitPercent             // Fraction of the reference size
)

// Value represents a length that can be absolute, a percentage, or auto.
// The zero Value is Auto.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that should be computed from content or the
// containing block.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Length returns a Value representing an absolute length.
func Length(px float32) Value {
	return Value{Amount: px, Unit: UnitLength}
}

// Percent returns a Value representing a fraction of a reference size.
// The value is on a 0-1 scale (0.5 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the value against reference.
// Auto, and percentages of an undefined reference, resolve to Undefined.
func (v Value) Resolve(reference float32) float32 {
	switch v.Unit {
	case UnitLength:
		return v.Amount
	case UnitPercent:
		if !IsDefined(reference) {
			return Undefined
		}
		return v.Amount * reference
	default:
		return Undefined
	}
}

// ResolveOrZero is Resolve with Undefined mapped to 0.
func (v Value) ResolveOrZero(reference float32) float32 {
	return orZero(v.Resolve(reference))
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// EdgeValues holds one Value per side of a box.
type EdgeValues struct {
	Top, Right, Bottom, Left Value
}

// EdgeValuesAll creates EdgeValues with the same value on all sides.
func EdgeValuesAll(v Value) EdgeValues {
	return EdgeValues{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeValuesSymmetric creates EdgeValues with vertical (top/bottom) and
// horizontal (left/right) values.
func EdgeValuesSymmetric(vertical, horizontal Value) EdgeValues {
	return EdgeValues{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// EdgeValuesTRBL creates EdgeValues following CSS order: Top, Right, Bottom, Left.
func EdgeValuesTRBL(t, r, b, l Value) EdgeValues {
	return EdgeValues{Top: t, Right: r, Bottom: b, Left: l}
}

// Resolve resolves every side against the same reference. CSS resolves
// percentage margins, padding and borders on all four sides against the
// containing block's width.
func (e EdgeValues) Resolve(reference float32) Edges {
	return Edges{
		Top:    e.Top.Resolve(reference),
		Right:  e.Right.Resolve(reference),
		Bottom: e.Bottom.Resolve(reference),
		Left:   e.Left.Resolve(reference),
	}
}

// ResolveOrZero is Resolve with Undefined sides mapped to 0.
func (e EdgeValues) ResolveOrZero(reference float32) Edges {
	return e.Resolve(reference).orZero()
}
