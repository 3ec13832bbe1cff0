package layout

// NodeID identifies a node within a Tree.
type NodeID uint64

// MeasureFunc reports the content-box size of leaf content such as text.
// known holds the content-box dimensions already fixed by styles or the
// parent (Undefined when free); available is the space left after margins,
// padding, border and scrollbar gutters. Implementations should return the
// known dimensions unchanged.
type MeasureFunc func(known Size, available AvailableSize) Size

// Tree is the interface the layout engine reads nodes through.
// The engine works entirely with this interface, enabling custom storage.
// It assumes an acyclic tree and does not mutate styles or children.
type Tree interface {
	// LayoutStyle returns the style for id. The engine does not modify it.
	LayoutStyle(id NodeID) *Style

	// LayoutChildren returns the children of id in document order.
	LayoutChildren(id NodeID) []NodeID

	// LayoutMeasure returns the measure function for a leaf, or nil.
	LayoutMeasure(id NodeID) MeasureFunc

	// SetLayout is called by the layout engine to store computed layout.
	SetLayout(id NodeID, layout Layout)
}
