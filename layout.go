// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package blockflow

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-blockflow/internal/layout"
)

// NodeID identifies a node. IDs issued by a Tree are never reused for a
// different node while the Tree lives.
type NodeID = layout.NodeID

// Display controls whether a node generates a box.
type Display = layout.Display

const (
	DisplayBlock = layout.DisplayBlock
	DisplayNone  = layout.DisplayNone
)

// Position selects in-flow or absolute placement.
type Position = layout.Position

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// BoxSizing selects which box explicit sizes describe.
type BoxSizing = layout.BoxSizing

const (
	BoxSizingBorderBox  = layout.BoxSizingBorderBox
	BoxSizingContentBox = layout.BoxSizingContentBox
)

// Overflow controls clipping and scrollbar reservation on one axis.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// TextAlign positions block children narrower than their content box.
type TextAlign = layout.TextAlign

const (
	TextAlignAuto   = layout.TextAlignAuto
	TextAlignLeft   = layout.TextAlignLeft
	TextAlignRight  = layout.TextAlignRight
	TextAlignCenter = layout.TextAlignCenter
)

// Value represents a dimension value (length, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitLength  = layout.UnitLength
	UnitPercent = layout.UnitPercent
)

// EdgeValues holds a Value per side, used for insets, margins, padding and borders.
type EdgeValues = layout.EdgeValues

// Style holds the layout properties for a node.
type Style = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents resolved spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Layout holds the computed layout for a node.
type Layout = layout.Layout

// AvailableSpace is the space offered on one axis.
type AvailableSpace = layout.AvailableSpace

// AvailableSize pairs the available space on both axes.
type AvailableSize = layout.AvailableSize

// MeasureFunc sizes leaf content. known holds dimensions already fixed by
// styles; available is the space the content may use.
type MeasureFunc = layout.MeasureFunc

// LayoutTree is the interface a custom node store implements to be laid
// out with Calculate.
type LayoutTree = layout.Tree

// Option configures a layout run.
type Option = layout.Option

// CollapsibleMarginSet tracks the largest positive and most negative
// margins meeting at one edge.
type CollapsibleMarginSet = layout.CollapsibleMarginSet

var (
	// MinContent asks for the narrowest size content can take.
	MinContent = layout.MinContent
	// MaxContent asks for the size content takes with no wrapping.
	MaxContent = layout.MaxContent
	// Undefined marks an indefinite length.
	Undefined = layout.Undefined
)

// Auto creates a Value resolved by the layout algorithm.
func Auto() Value {
	return layout.Auto()
}

// Length creates a Value of px layout units.
func Length(px float32) Value {
	return layout.Length(px)
}

// Percent creates a Value that is a fraction of the containing block:
// Percent(0.5) is 50%.
func Percent(p float32) Value {
	return layout.Percent(p)
}

// EdgeValuesAll uses v on all four sides.
func EdgeValuesAll(v Value) EdgeValues {
	return layout.EdgeValuesAll(v)
}

// EdgeValuesSymmetric uses vertical for top/bottom and horizontal for left/right.
func EdgeValuesSymmetric(vertical, horizontal Value) EdgeValues {
	return layout.EdgeValuesSymmetric(vertical, horizontal)
}

// EdgeValuesTRBL follows CSS order: Top, Right, Bottom, Left.
func EdgeValuesTRBL(t, r, b, l Value) EdgeValues {
	return layout.EdgeValuesTRBL(t, r, b, l)
}

// DefaultStyle returns a Style with default values: block, in flow,
// border-box, auto sizes and insets, zero spacing.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// Definite returns AvailableSpace of exactly v.
func Definite(v float32) AvailableSpace {
	return layout.Definite(v)
}

// DefiniteSize returns an AvailableSize of exactly width x height.
func DefiniteSize(width, height float32) AvailableSize {
	return layout.DefiniteSize(width, height)
}

// MaxContentSize requests max-content on both axes.
func MaxContentSize() AvailableSize {
	return layout.MaxContentSize()
}

// IsDefined reports whether v is a definite length.
func IsDefined(v float32) bool {
	return layout.IsDefined(v)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return layout.EdgeAll(n)
}

// WithLogger traces every node computation at debug level.
func WithLogger(log *zap.Logger) Option {
	return layout.WithLogger(log)
}

// Calculate lays out a custom LayoutTree rooted at root. Most callers use
// Tree.ComputeLayout instead.
func Calculate(tree LayoutTree, root NodeID, available AvailableSize, opts ...Option) {
	layout.Calculate(tree, root, available, opts...)
}

// MeasureNode returns the border-box size root would take under available
// without writing layouts.
func MeasureNode(tree LayoutTree, root NodeID, available AvailableSize, opts ...Option) Size {
	return layout.MeasureNode(tree, root, available, opts...)
}
