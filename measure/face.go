package measure

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face measures text with a font face in pixels.
type Face struct {
	face font.Face
}

// NewFace wraps face. The face must not be used concurrently elsewhere
// while layouts run.
func NewFace(face font.Face) Face {
	return Face{face: face}
}

// Basic returns a Face using the 7x13 bitmap font.
func Basic() Face {
	return NewFace(basicfont.Face7x13)
}

func (f Face) Advance(s string) float32 {
	return fromFixed(font.MeasureString(f.face, s))
}

func (f Face) LineHeight() float32 {
	return fromFixed(f.face.Metrics().Height)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
