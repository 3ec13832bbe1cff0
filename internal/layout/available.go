package layout

import "fmt"

type availableKind uint8

const (
	availableDefinite availableKind = iota
	availableMinContent
	availableMaxContent
)

// AvailableSpace is the space a parent offers a child on one axis:
// a definite length, or a request for the min-content or max-content size.
type AvailableSpace struct {
	kind  availableKind
	value float32
}

var (
	// MinContent asks for the narrowest size content can take without overflowing.
	MinContent = AvailableSpace{kind: availableMinContent}
	// MaxContent asks for the size content takes with no wrapping.
	MaxContent = AvailableSpace{kind: availableMaxContent}
)

// Definite returns AvailableSpace of exactly v. An undefined v yields MaxContent.
func Definite(v float32) AvailableSpace {
	if !IsDefined(v) {
		return MaxContent
	}
	return AvailableSpace{kind: availableDefinite, value: v}
}

// IsDefinite reports whether the space is a fixed length.
func (a AvailableSpace) IsDefinite() bool { return a.kind == availableDefinite }

// IsMinContent reports whether the space requests the min-content size.
func (a AvailableSpace) IsMinContent() bool { return a.kind == availableMinContent }

// IsMaxContent reports whether the space requests the max-content size.
func (a AvailableSpace) IsMaxContent() bool { return a.kind == availableMaxContent }

// Value returns the definite length, or Undefined.
func (a AvailableSpace) Value() float32 {
	if a.kind != availableDefinite {
		return Undefined
	}
	return a.value
}

// Sub shrinks a definite space by d. Content-sized spaces are unchanged.
func (a AvailableSpace) Sub(d float32) AvailableSpace {
	if a.kind != availableDefinite {
		return a
	}
	return Definite(maybeSub(a.value, d))
}

// String implements fmt.Stringer.
func (a AvailableSpace) String() string {
	switch a.kind {
	case availableMinContent:
		return "min-content"
	case availableMaxContent:
		return "max-content"
	default:
		return fmt.Sprintf("%g", a.value)
	}
}

// AvailableSize pairs the available space on both axes.
type AvailableSize struct {
	Width, Height AvailableSpace
}

// DefiniteSize returns an AvailableSize of exactly width x height.
func DefiniteSize(width, height float32) AvailableSize {
	return AvailableSize{Width: Definite(width), Height: Definite(height)}
}

// MaxContentSize returns an AvailableSize requesting max-content on both axes.
func MaxContentSize() AvailableSize {
	return AvailableSize{Width: MaxContent, Height: MaxContent}
}

// values returns the definite lengths, with content-sized axes Undefined.
func (a AvailableSize) values() Size {
	return Size{Width: a.Width.Value(), Height: a.Height.Value()}
}
