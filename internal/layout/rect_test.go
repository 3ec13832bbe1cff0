package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float32
		bottom float32
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"fractional": {
			rect:   NewRect(0.5, 0.25, 10, 10),
			right:  10.5,
			bottom: 10.25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y     float32
		expected bool
	}

	tests := map[string]tc{
		"inside":        {x: 15, y: 15, expected: true},
		"top-left edge": {x: 10, y: 10, expected: true},
		"right edge":    {x: 30, y: 15, expected: false},
		"bottom edge":   {x: 15, y: 30, expected: false},
		"outside":       {x: 0, y: 0, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
			if got := (Point{X: tt.x, Y: tt.y}).In(r); got != tt.expected {
				t.Errorf("Point.In = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	type tc struct {
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"zero edges":   {edges: Edges{}, expected: r},
		"uneven edges": {edges: Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}, expected: NewRect(4, 1, 94, 46)},
		"oversized":    {edges: EdgeAll(30), expected: NewRect(30, 30, 40, -10)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.edges, got, tt.expected)
			}
		})
	}
}

func TestRect_OriginExtentTranslate(t *testing.T) {
	r := NewRect(3, 4, 10, 20)

	if got := r.Origin(); got != (Point{X: 3, Y: 4}) {
		t.Errorf("Origin() = %+v", got)
	}
	if got := r.Extent(); got != (Size{Width: 10, Height: 20}) {
		t.Errorf("Extent() = %+v", got)
	}
	if got := r.Translate(Point{X: -3, Y: 6}); got != NewRect(0, 10, 10, 20) {
		t.Errorf("Translate() = %+v", got)
	}
	if got := NewRect(5, 5, 0, 10); got.Contains(5, 5) {
		t.Errorf("zero-width rect contains its origin")
	}
}

func TestLayout_Boxes(t *testing.T) {
	l := Layout{
		Location:      Point{X: 10, Y: 20},
		Size:          Size{Width: 100, Height: 80},
		Border:        EdgeAll(2),
		Padding:       EdgeAll(5),
		ScrollbarSize: Size{Width: 15},
	}

	if got := l.BorderBox(); got != NewRect(10, 20, 100, 80) {
		t.Errorf("BorderBox() = %+v", got)
	}
	if got := l.PaddingBox(); got != NewRect(12, 22, 96, 76) {
		t.Errorf("PaddingBox() = %+v", got)
	}
	if got := l.ContentBox(); got != NewRect(17, 27, 71, 66) {
		t.Errorf("ContentBox() = %+v", got)
	}
}
