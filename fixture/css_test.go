package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/grindlemire/go-blockflow"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()

	px := blockflow.Length
	pct := blockflow.Percent
	auto := blockflow.Auto()

	testCases := []struct {
		name   string
		src    string
		assert func(t *testing.T, s blockflow.Style)
	}{
		{
			name: "empty keeps initial values",
			src:  "",
			assert: func(t *testing.T, s blockflow.Style) {
				want := blockflow.DefaultStyle()
				want.ScrollbarWidth = DefaultScrollbarWidth
				assert.Equal(t, want, s)
			},
		},
		{
			name: "sizes",
			src:  "width: 10px; height: 50%; min-width: 0; max-width: none; max-height: 30px",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, px(10), s.Width)
				assert.Equal(t, pct(0.5), s.Height)
				assert.Equal(t, px(0), s.MinWidth)
				assert.Equal(t, auto, s.MaxWidth)
				assert.Equal(t, px(30), s.MaxHeight)
			},
		},
		{
			name: "unitless numbers are px",
			src:  "width: 12",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, px(12), s.Width)
			},
		},
		{
			name: "keywords are case insensitive",
			src:  "DISPLAY: None; Position: ABSOLUTE; box-sizing: content-box",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, blockflow.DisplayNone, s.Display)
				assert.Equal(t, blockflow.PositionAbsolute, s.Position)
				assert.Equal(t, blockflow.BoxSizingContentBox, s.BoxSizing)
			},
		},
		{
			name: "margin with two values",
			src:  "margin: 0 auto",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, blockflow.EdgeValuesSymmetric(px(0), auto), s.Margin)
			},
		},
		{
			name: "padding with three values",
			src:  "padding: 1px 2px 3px",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, blockflow.EdgeValuesTRBL(px(1), px(2), px(3), px(2)), s.Padding)
			},
		},
		{
			name: "inset with four values then longhand",
			src:  "inset: 1px 2px 3px 4px; left: 10%",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, blockflow.EdgeValuesTRBL(px(1), px(2), px(3), pct(0.1)), s.Inset)
			},
		},
		{
			name: "longhand sides",
			src:  "margin-top: -5px; padding-left: 2px; border-bottom-width: 4px; top: auto",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, px(-5), s.Margin.Top)
				assert.Equal(t, px(2), s.Padding.Left)
				assert.Equal(t, px(4), s.Border.Bottom)
				assert.Equal(t, auto, s.Inset.Top)
			},
		},
		{
			name: "border shorthand takes the width",
			src:  "border: 2px solid red; border-left: none",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, blockflow.EdgeValuesTRBL(px(2), px(2), px(2), px(0)), s.Border)
			},
		},
		{
			name: "border without a width is medium",
			src:  "border: solid",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, blockflow.EdgeValuesAll(px(3)), s.Border)
			},
		},
		{
			name: "aspect ratio as a number",
			src:  "aspect-ratio: 2",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, float32(2), s.AspectRatio)
			},
		},
		{
			name: "aspect ratio as a fraction",
			src:  "aspect-ratio: 16 / 8",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, float32(2), s.AspectRatio)
			},
		},
		{
			name: "overflow with two values",
			src:  "overflow: hidden scroll",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, blockflow.OverflowHidden, s.OverflowX)
				assert.Equal(t, blockflow.OverflowScroll, s.OverflowY)
			},
		},
		{
			name: "overflow auto clips without a gutter",
			src:  "overflow: auto",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, blockflow.OverflowHidden, s.OverflowX)
				assert.Equal(t, blockflow.OverflowHidden, s.OverflowY)
			},
		},
		{
			name: "scrollbar width thin",
			src:  "scrollbar-width: thin",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, float32(DefaultScrollbarWidth)/2, s.ScrollbarWidth)
			},
		},
		{
			name: "scrollbar width length",
			src:  "scrollbar-width: 6px",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, float32(6), s.ScrollbarWidth)
			},
		},
		{
			name: "text align variants",
			src:  "text-align: -webkit-center",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, blockflow.TextAlignCenter, s.TextAlign)
			},
		},
		{
			name: "important is ignored",
			src:  "width: 10px !important",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, px(10), s.Width)
			},
		},
		{
			name: "unknown properties are skipped",
			src:  "color: red; width: 1px; background-color: blue",
			assert: func(t *testing.T, s blockflow.Style) {
				assert.Equal(t, px(1), s.Width)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := ParseStyle(tc.src)
			require.NoError(t, err)
			tc.assert(t, s)
		})
	}
}

func TestParseStyle_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "unsupported unit", src: "width: 2em", wantErr: `unsupported unit "em"`},
		{name: "negative width", src: "width: -1px", wantErr: "negative size"},
		{name: "negative padding", src: "padding: -1px", wantErr: "negative value"},
		{name: "unknown display", src: "display: grid", wantErr: `unsupported value "grid"`},
		{name: "flow-root display", src: "display: flow-root", wantErr: `unsupported value "flow-root"`},
		{name: "fixed position", src: "position: fixed", wantErr: `unsupported value "fixed"`},
		{name: "too many margins", src: "margin: 1px 2px 3px 4px 5px", wantErr: "at most four values"},
		{name: "bad aspect ratio", src: "aspect-ratio: 1px", wantErr: "expected a number"},
		{name: "keyword as length", src: "height: tall", wantErr: "expected a length"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseStyle(tc.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestStyleParser_ScrollbarWidth(t *testing.T) {
	t.Parallel()
	sp := StyleParser{ScrollbarWidth: 12}

	s, err := sp.Parse("overflow-y: scroll")
	require.NoError(t, err)
	assert.Equal(t, float32(12), s.ScrollbarWidth)

	s, err = sp.Parse("scrollbar-width: none")
	require.NoError(t, err)
	assert.Zero(t, s.ScrollbarWidth)
}

func TestStyleParser_LogsUnknownProperties(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	sp := StyleParser{Log: zap.New(core)}

	_, err := sp.Parse("float: left; width: 1px")
	require.NoError(t, err)

	entries := logs.FilterMessage("ignoring unsupported property").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "float", entries[0].ContextMap()["property"])
}
