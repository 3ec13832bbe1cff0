package layout

import "testing"

func TestScrollbarGutter(t *testing.T) {
	type tc struct {
		overflowX, overflowY Overflow
		expected             Edges
	}

	tests := map[string]tc{
		"visible reserves nothing": {
			overflowX: OverflowVisible,
			overflowY: OverflowVisible,
		},
		"hidden reserves nothing": {
			overflowX: OverflowHidden,
			overflowY: OverflowHidden,
		},
		"scroll y reserves right edge": {
			overflowX: OverflowVisible,
			overflowY: OverflowScroll,
			expected:  Edges{Right: 15},
		},
		"scroll x reserves bottom edge": {
			overflowX: OverflowScroll,
			overflowY: OverflowHidden,
			expected:  Edges{Bottom: 15},
		},
		"scroll both": {
			overflowX: OverflowScroll,
			overflowY: OverflowScroll,
			expected:  Edges{Right: 15, Bottom: 15},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := styled(func(s *Style) {
				s.OverflowX = tt.overflowX
				s.OverflowY = tt.overflowY
				s.ScrollbarWidth = 15
			})
			if got := scrollbarGutter(&s); got != tt.expected {
				t.Errorf("scrollbarGutter() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestResolvePaddingBorder(t *testing.T) {
	s := styled(func(s *Style) {
		s.Padding = EdgeValuesTRBL(Percent(0.1), Length(4), Length(-3), Auto())
		s.Border = EdgeValuesAll(Percent(0.05))
	})

	padding, border := resolvePaddingBorder(&s, 200)
	if want := (Edges{Top: 20, Right: 4}); padding != want {
		t.Errorf("padding = %+v, want %+v", padding, want)
	}
	if want := EdgeAll(10); border != want {
		t.Errorf("border = %+v, want %+v", border, want)
	}

	padding, border = resolvePaddingBorder(&s, Undefined)
	if want := (Edges{Right: 4}); padding != want {
		t.Errorf("padding with indefinite reference = %+v, want %+v", padding, want)
	}
	if !border.IsZero() {
		t.Errorf("border with indefinite reference = %+v, want zero", border)
	}
}

func TestResolveBoxSizes_BoxSizing(t *testing.T) {
	type tc struct {
		boxSizing BoxSizing
		width     float32
		minHeight float32
	}

	tests := map[string]tc{
		"border-box sizes are the border box": {
			boxSizing: BoxSizingBorderBox,
			width:     100,
			minHeight: 50,
		},
		"content-box sizes gain padding and border": {
			boxSizing: BoxSizingContentBox,
			width:     130,
			minHeight: 80,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := styled(func(s *Style) {
				s.BoxSizing = tt.boxSizing
				s.Width = Length(100)
				s.MinHeight = Length(50)
				s.Padding = EdgeValuesAll(Length(10))
				s.Border = EdgeValuesAll(Length(5))
			})
			padding, border := resolvePaddingBorder(&s, 500)
			pb := padding.Add(border).Sum()
			sizes := resolveBoxSizes(&s, Size{Width: 500, Height: 500}, boxSizingAdjustment(&s, pb))

			if sizes.size.Width != tt.width {
				t.Errorf("size.Width = %v, want %v", sizes.size.Width, tt.width)
			}
			if IsDefined(sizes.size.Height) {
				t.Errorf("size.Height = %v, want Undefined", sizes.size.Height)
			}
			if sizes.min.Height != tt.minHeight {
				t.Errorf("min.Height = %v, want %v", sizes.min.Height, tt.minHeight)
			}
			if IsDefined(sizes.max.Width) {
				t.Errorf("max.Width = %v, want Undefined", sizes.max.Width)
			}
		})
	}
}

func TestBoxSizes_ClampedSize(t *testing.T) {
	u := Undefined
	type tc struct {
		sizes    boxSizes
		expected Size
	}

	tests := map[string]tc{
		"size within bounds": {
			sizes:    boxSizes{size: Size{Width: 50, Height: u}, min: UndefinedSize(), max: Size{Width: 80, Height: u}},
			expected: Size{Width: 50, Height: u},
		},
		"size above max": {
			sizes:    boxSizes{size: Size{Width: 100, Height: 10}, min: UndefinedSize(), max: Size{Width: 80, Height: u}},
			expected: Size{Width: 80, Height: 10},
		},
		"max below min fixes the axis": {
			sizes:    boxSizes{size: UndefinedSize(), min: Size{Width: 60, Height: u}, max: Size{Width: 40, Height: u}},
			expected: Size{Width: 60, Height: u},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.sizes.clampedSize(); !sameSize(got, tt.expected) {
				t.Errorf("clampedSize() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPreventsCollapseThrough(t *testing.T) {
	type tc struct {
		mod      func(s *Style)
		expected bool
	}

	tests := map[string]tc{
		"plain block":        {mod: nil, expected: false},
		"overflow hidden":    {mod: func(s *Style) { s.OverflowY = OverflowHidden }, expected: true},
		"absolute":           {mod: func(s *Style) { s.Position = PositionAbsolute }, expected: true},
		"padding top":        {mod: func(s *Style) { s.Padding.Top = Length(1) }, expected: true},
		"border bottom":      {mod: func(s *Style) { s.Border.Bottom = Length(1) }, expected: true},
		"explicit height":    {mod: func(s *Style) { s.Height = Length(1) }, expected: true},
		"zero height":        {mod: func(s *Style) { s.Height = Length(0) }, expected: false},
		"min height":         {mod: func(s *Style) { s.MinHeight = Length(5) }, expected: true},
		"horizontal padding": {mod: func(s *Style) { s.Padding.Left = Length(5) }, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := styled(tt.mod)
			padding, border := resolvePaddingBorder(&s, 100)
			sizes := resolveBoxSizes(&s, Size{Width: 100, Height: Undefined}, Size{})
			if got := preventsCollapseThrough(&s, padding, border, sizes); got != tt.expected {
				t.Errorf("preventsCollapseThrough() = %v, want %v", got, tt.expected)
			}
		})
	}
}
