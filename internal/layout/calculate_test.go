package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalculate_Root(t *testing.T) {
	type tc struct {
		style          Style
		available      AvailableSize
		expectedWidth  float32
		expectedHeight float32
	}

	tests := map[string]tc{
		"fixed width and height": {
			style: styled(func(s *Style) {
				s.Width = Length(50)
				s.Height = Length(30)
			}),
			available:      DefiniteSize(100, 100),
			expectedWidth:  50,
			expectedHeight: 30,
		},
		"auto width stretches to definite available width": {
			style:          DefaultStyle(),
			available:      DefiniteSize(100, 80),
			expectedWidth:  100,
			expectedHeight: 0,
		},
		"auto width minus root margins": {
			style: styled(func(s *Style) {
				s.Margin = EdgeValuesAll(Length(10))
			}),
			available:      DefiniteSize(100, 80),
			expectedWidth:  80,
			expectedHeight: 0,
		},
		"percent of available": {
			style: styled(func(s *Style) {
				s.Width = Percent(0.5)
				s.Height = Percent(0.25)
			}),
			available:      DefiniteSize(200, 100),
			expectedWidth:  100,
			expectedHeight: 25,
		},
		"percent of max-content is auto": {
			style: styled(func(s *Style) {
				s.Width = Percent(0.5)
			}),
			available:      MaxContentSize(),
			expectedWidth:  0,
			expectedHeight: 0,
		},
		"stretched width clamped by max": {
			style: styled(func(s *Style) {
				s.MaxWidth = Length(60)
			}),
			available:      DefiniteSize(100, 100),
			expectedWidth:  60,
			expectedHeight: 0,
		},
		"padding and border floor": {
			style: styled(func(s *Style) {
				s.Width = Length(5)
				s.Padding = EdgeValuesAll(Length(4))
				s.Border = EdgeValuesAll(Length(1))
			}),
			available:      MaxContentSize(),
			expectedWidth:  10,
			expectedHeight: 10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			root := tree.node(tt.style)
			Calculate(tree, root, tt.available)

			checkBox(t, "root", tree.layout(root), 0, 0, tt.expectedWidth, tt.expectedHeight)
		})
	}
}

func TestCalculate_BlockBasic(t *testing.T) {
	tree := newTestTree()
	first := tree.node(styled(func(s *Style) { s.Height = Length(10) }))
	second := tree.node(styled(func(s *Style) { s.Height = Length(10) }))
	root := tree.node(styled(func(s *Style) { s.Width = Length(50) }), first, second)

	Calculate(tree, root, MaxContentSize())

	checkBox(t, "root", tree.layout(root), 0, 0, 50, 20)
	checkBox(t, "first", tree.layout(first), 0, 0, 50, 10)
	checkBox(t, "second", tree.layout(second), 0, 10, 50, 10)

	if tree.layout(first).Order != 0 || tree.layout(second).Order != 1 {
		t.Errorf("orders = %d, %d, want 0, 1", tree.layout(first).Order, tree.layout(second).Order)
	}
}

func TestCalculate_BoxSizing(t *testing.T) {
	type tc struct {
		boxSizing    BoxSizing
		expectedSize float32
		contentSize  float32
	}

	tests := map[string]tc{
		"border-box": {
			boxSizing:    BoxSizingBorderBox,
			expectedSize: 100,
			contentSize:  70,
		},
		"content-box": {
			boxSizing:    BoxSizingContentBox,
			expectedSize: 130,
			contentSize:  100,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			child := tree.node(styled(func(s *Style) { s.Height = Length(10) }))
			root := tree.node(styled(func(s *Style) {
				s.BoxSizing = tt.boxSizing
				s.Width = Length(100)
				s.Height = Length(100)
				s.Padding = EdgeValuesAll(Length(10))
				s.Border = EdgeValuesAll(Length(5))
			}), child)

			Calculate(tree, root, MaxContentSize())

			got := tree.layout(root)
			checkBox(t, "root", got, 0, 0, tt.expectedSize, tt.expectedSize)
			if box := got.ContentBox(); box.Width != tt.contentSize || box.Height != tt.contentSize {
				t.Errorf("ContentBox() = %gx%g, want %gx%g", box.Width, box.Height, tt.contentSize, tt.contentSize)
			}
			checkBox(t, "child", tree.layout(child), 15, 15, tt.contentSize, 10)
		})
	}
}

func TestCalculate_MarginAutoLeftAndRight(t *testing.T) {
	type tc struct {
		left, right Value
		expectedX   float32
	}

	tests := map[string]tc{
		"both auto centers": {
			left:      Auto(),
			right:     Auto(),
			expectedX: 75,
		},
		"left auto pushes right": {
			left:      Auto(),
			right:     Length(0),
			expectedX: 150,
		},
		"right auto keeps left": {
			left:      Length(10),
			right:     Auto(),
			expectedX: 10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			child := tree.node(styled(func(s *Style) {
				s.Width = Length(50)
				s.Height = Length(50)
				s.Margin.Left = tt.left
				s.Margin.Right = tt.right
			}))
			root := tree.node(styled(func(s *Style) {
				s.Width = Length(200)
				s.Height = Length(200)
			}), child)

			Calculate(tree, root, MaxContentSize())

			checkBox(t, "child", tree.layout(child), tt.expectedX, 0, 50, 50)
			l := tree.layout(child)
			if got := l.Margin.Left + l.Size.Width + l.Margin.Right; got != 200 {
				t.Errorf("margin box width = %v, want 200", got)
			}
		})
	}
}

func TestCalculate_TextAlign(t *testing.T) {
	type tc struct {
		align     TextAlign
		expectedX float32
	}

	tests := map[string]tc{
		"auto":   {align: TextAlignAuto, expectedX: 0},
		"left":   {align: TextAlignLeft, expectedX: 0},
		"right":  {align: TextAlignRight, expectedX: 150},
		"center": {align: TextAlignCenter, expectedX: 75},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTestTree()
			child := tree.node(styled(func(s *Style) {
				s.Width = Length(50)
				s.Height = Length(10)
			}))
			root := tree.node(styled(func(s *Style) {
				s.Width = Length(200)
				s.TextAlign = tt.align
			}), child)

			Calculate(tree, root, MaxContentSize())

			checkBox(t, "child", tree.layout(child), tt.expectedX, 0, 50, 10)
		})
	}
}

func TestCalculate_Percentages(t *testing.T) {
	tree := newTestTree()
	child := tree.node(styled(func(s *Style) {
		s.Width = Percent(0.5)
		s.Height = Percent(0.5)
		s.Padding = EdgeValuesAll(Percent(0.1))
		s.Margin.Top = Percent(0.1)
	}))
	root := tree.node(styled(func(s *Style) {
		s.Width = Length(200)
		s.Height = Length(100)
	}), child)

	Calculate(tree, root, MaxContentSize())

	got := tree.layout(child)
	checkBox(t, "child", got, 0, 20, 100, 50)
	if want := EdgeAll(20); got.Padding != want {
		t.Errorf("child padding = %+v, want %+v", got.Padding, want)
	}
	if got.Margin.Top != 20 {
		t.Errorf("child margin top = %v, want 20", got.Margin.Top)
	}
}

func TestCalculate_PercentHeightOfAutoParent(t *testing.T) {
	tree := newTestTree()
	child := tree.node(styled(func(s *Style) { s.Height = Percent(0.5) }))
	root := tree.node(styled(func(s *Style) { s.Width = Length(100) }), child)

	Calculate(tree, root, DefiniteSize(500, 500))

	// The containing block height is indefinite, so the percentage acts as auto.
	checkBox(t, "child", tree.layout(child), 0, 0, 100, 0)
	checkBox(t, "root", tree.layout(root), 0, 0, 100, 0)
}

func TestCalculate_RelativeOffset(t *testing.T) {
	tree := newTestTree()
	shifted := tree.node(styled(func(s *Style) {
		s.Height = Length(10)
		s.Inset.Left = Length(5)
		s.Inset.Top = Length(5)
		s.Inset.Right = Length(100) // ignored, left wins
	}))
	after := tree.node(styled(func(s *Style) {
		s.Height = Length(10)
		s.Inset.Bottom = Length(3)
	}))
	root := tree.node(styled(func(s *Style) { s.Width = Length(100) }), shifted, after)

	Calculate(tree, root, MaxContentSize())

	checkBox(t, "shifted", tree.layout(shifted), 5, 5, 100, 10)
	checkBox(t, "after", tree.layout(after), 0, 7, 100, 10)
	checkBox(t, "root", tree.layout(root), 0, 0, 100, 20)
}

func TestCalculate_DisplayNone(t *testing.T) {
	tree := newTestTree()
	hiddenChild := tree.node(styled(func(s *Style) { s.Height = Length(30) }))
	hidden := tree.node(styled(func(s *Style) {
		s.Display = DisplayNone
		s.Height = Length(10)
	}), hiddenChild)
	visible := tree.node(styled(func(s *Style) { s.Height = Length(10) }))
	root := tree.node(styled(func(s *Style) { s.Width = Length(100) }), hidden, visible)

	// Seed stale layouts to prove they are overwritten.
	tree.SetLayout(hidden, Layout{Size: Size{Width: 9, Height: 9}})
	tree.SetLayout(hiddenChild, Layout{Size: Size{Width: 9, Height: 9}})

	Calculate(tree, root, MaxContentSize())

	if got := tree.layout(hidden); got != (Layout{Order: 0}) {
		t.Errorf("hidden layout = %+v, want zero", got)
	}
	if got := tree.layout(hiddenChild); got != (Layout{}) {
		t.Errorf("hidden child layout = %+v, want zero", got)
	}
	checkBox(t, "visible", tree.layout(visible), 0, 0, 100, 10)
	if tree.layout(visible).Order != 1 {
		t.Errorf("visible order = %d, want 1", tree.layout(visible).Order)
	}
	checkBox(t, "root", tree.layout(root), 0, 0, 100, 10)
}

func TestCalculate_DisplayNoneRoot(t *testing.T) {
	tree := newTestTree()
	child := tree.node(styled(func(s *Style) { s.Height = Length(10) }))
	root := tree.node(styled(func(s *Style) {
		s.Display = DisplayNone
		s.Width = Length(100)
	}), child)

	Calculate(tree, root, DefiniteSize(100, 100))

	if got := tree.layout(root); got != (Layout{}) {
		t.Errorf("root layout = %+v, want zero", got)
	}
	if got := tree.layout(child); got != (Layout{}) {
		t.Errorf("child layout = %+v, want zero", got)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	tree := newTestTree()
	text := tree.leaf(styled(func(s *Style) {
		s.Margin = EdgeValuesAll(Length(4))
	}), fixedMeasure(30, 12))
	abs := tree.node(styled(func(s *Style) {
		s.Position = PositionAbsolute
		s.Inset = EdgeValuesAll(Length(0))
		s.Margin = EdgeValuesAll(Auto())
		s.Width = Length(10)
		s.Height = Length(10)
	}))
	inner := tree.node(styled(func(s *Style) {
		s.Padding = EdgeValuesAll(Length(3))
		s.Margin.Bottom = Length(-2)
	}), text, abs)
	root := tree.node(styled(func(s *Style) {
		s.Width = Percent(0.8)
		s.OverflowY = OverflowScroll
		s.ScrollbarWidth = 15
	}), inner)

	Calculate(tree, root, DefiniteSize(400, 300))
	first := tree.layouts()

	Calculate(tree, root, DefiniteSize(400, 300))
	second := tree.layouts()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second Calculate changed layouts (-first +second):\n%s", diff)
	}
}
