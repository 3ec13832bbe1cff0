package blockflow

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-blockflow/internal/layout"
)

// node is one arena entry.
type node struct {
	style    Style
	measure  MeasureFunc
	children []NodeID
	parent   NodeID // 0 when detached
	layout   Layout

	// Internal state
	dirty         bool // Needs recalculation
	laidOutAsRoot bool // layout was last computed with this node as the root
	lastAvailable AvailableSize
}

type slot struct {
	generation uint32
	live       bool
	node       node
}

// Tree is an arena of styled nodes. IDs pack a slot index and a generation,
// so an ID of a removed node stays invalid after its slot is reused.
//
// A Tree is not safe for concurrent mutation. ComputeLayoutParallel is the
// only method that runs work concurrently, and no other call may overlap it.
type Tree struct {
	slots []slot
	free  []uint32
	live  int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

func makeID(index, generation uint32) NodeID {
	return NodeID(uint64(generation)<<32 | uint64(index))
}

func splitID(id NodeID) (index, generation uint32) {
	return uint32(id), uint32(id >> 32)
}

// get resolves id, failing for unknown or removed nodes.
func (t *Tree) get(id NodeID) (*node, error) {
	index, generation := splitID(id)
	if int(index) >= len(t.slots) {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	s := &t.slots[index]
	if !s.live || s.generation != generation {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return &s.node, nil
}

// nodeAt returns the node for an id already known to be live.
func (t *Tree) nodeAt(id NodeID) *node {
	index, _ := splitID(id)
	return &t.slots[index].node
}

func (t *Tree) insert(n node) NodeID {
	n.dirty = true // New nodes need layout
	t.live++
	if k := len(t.free); k > 0 {
		index := t.free[k-1]
		t.free = t.free[:k-1]
		s := &t.slots[index]
		s.live = true
		s.node = n
		return makeID(index, s.generation)
	}
	t.slots = append(t.slots, slot{generation: 1, live: true, node: n})
	return makeID(uint32(len(t.slots)-1), 1)
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.live
}

// NewLeaf adds a childless node. Without a measure function it measures
// as 0x0.
func (t *Tree) NewLeaf(style Style) NodeID {
	return t.insert(node{style: style})
}

// NewLeafWithMeasure adds a childless node whose content is sized by fn.
func (t *Tree) NewLeafWithMeasure(style Style, fn MeasureFunc) NodeID {
	return t.insert(node{style: style, measure: fn})
}

// NewNode adds a node with the given children, which must be detached.
// Nothing is added when an error is returned.
func (t *Tree) NewNode(style Style, children ...NodeID) (NodeID, error) {
	for i, child := range children {
		c, err := t.get(child)
		if err != nil {
			return 0, err
		}
		if c.parent != 0 {
			return 0, fmt.Errorf("child %d: %w", child, ErrHasParent)
		}
		if slices.Contains(children[:i], child) {
			return 0, fmt.Errorf("child %d listed twice: %w", child, ErrHasParent)
		}
	}

	id := t.insert(node{style: style, children: slices.Clone(children)})
	for _, child := range children {
		t.nodeAt(child).parent = id
	}
	return id, nil
}

// attachable validates that child can be placed under parent.
func (t *Tree) attachable(parent, child NodeID) (*node, *node, error) {
	p, err := t.get(parent)
	if err != nil {
		return nil, nil, err
	}
	c, err := t.get(child)
	if err != nil {
		return nil, nil, err
	}
	if c.parent != 0 {
		return nil, nil, fmt.Errorf("child %d: %w", child, ErrHasParent)
	}
	for a := parent; a != 0; a = t.nodeAt(a).parent {
		if a == child {
			return nil, nil, fmt.Errorf("adding %d under %d: %w", child, parent, ErrCycle)
		}
	}
	return p, c, nil
}

// AddChild appends child to parent and marks parent dirty.
func (t *Tree) AddChild(parent, child NodeID) error {
	p, c, err := t.attachable(parent, child)
	if err != nil {
		return err
	}
	p.children = append(p.children, child)
	c.parent = parent
	t.markDirty(parent)
	return nil
}

// InsertChild places child at index among parent's children.
func (t *Tree) InsertChild(parent NodeID, index int, child NodeID) error {
	p, c, err := t.attachable(parent, child)
	if err != nil {
		return err
	}
	if index < 0 || index > len(p.children) {
		return fmt.Errorf("index %d of %d children: %w", index, len(p.children), ErrChildIndex)
	}
	p.children = slices.Insert(p.children, index, child)
	c.parent = parent
	t.markDirty(parent)
	return nil
}

// RemoveChild detaches child from parent, keeping the order of the
// remaining children.
func (t *Tree) RemoveChild(parent, child NodeID) error {
	p, err := t.get(parent)
	if err != nil {
		return err
	}
	i := slices.Index(p.children, child)
	if i < 0 {
		return fmt.Errorf("node %d is not a child of %d: %w", child, parent, ErrNodeNotFound)
	}
	p.children = slices.Delete(p.children, i, i+1)
	t.nodeAt(child).parent = 0
	t.markDirty(parent)
	return nil
}

// Remove deletes id and its whole subtree from the tree. It is detached
// from its parent first, and every removed ID becomes invalid.
func (t *Tree) Remove(id NodeID) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	if n.parent != 0 {
		if err := t.RemoveChild(n.parent, id); err != nil {
			return err
		}
	}
	t.release(id)
	return nil
}

// release frees the slots of id and its descendants.
func (t *Tree) release(id NodeID) {
	for _, child := range t.nodeAt(id).children {
		t.release(child)
	}

	index, _ := splitID(id)
	s := &t.slots[index]
	s.live = false
	s.generation++
	s.node = node{}
	t.free = append(t.free, index)
	t.live--
}

// SetStyle replaces the style and marks the node dirty.
func (t *Tree) SetStyle(id NodeID, style Style) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.style = style
	t.markDirty(id)
	return nil
}

// SetMeasure replaces the measure function and marks the node dirty.
// A nil fn measures as 0x0.
func (t *Tree) SetMeasure(id NodeID, fn MeasureFunc) error {
	n, err := t.get(id)
	if err != nil {
		return err
	}
	n.measure = fn
	t.markDirty(id)
	return nil
}

// Style returns the node's style.
func (t *Tree) Style(id NodeID) (Style, error) {
	n, err := t.get(id)
	if err != nil {
		return Style{}, err
	}
	return n.style, nil
}

// Children returns a copy of the node's children in order.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	n, err := t.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.children), nil
}

// ChildCount returns the number of children, or 0 for an unknown node.
func (t *Tree) ChildCount(id NodeID) int {
	n, err := t.get(id)
	if err != nil {
		return 0
	}
	return len(n.children)
}

// Parent returns the node's parent. ok is false for detached or unknown nodes.
func (t *Tree) Parent(id NodeID) (parent NodeID, ok bool) {
	n, err := t.get(id)
	if err != nil || n.parent == 0 {
		return 0, false
	}
	return n.parent, true
}

// MarkDirty forces the next ComputeLayout covering id to run.
func (t *Tree) MarkDirty(id NodeID) error {
	if _, err := t.get(id); err != nil {
		return err
	}
	t.markDirty(id)
	return nil
}

// IsDirty reports whether id needs recalculation. Unknown nodes are not dirty.
func (t *Tree) IsDirty(id NodeID) bool {
	n, err := t.get(id)
	return err == nil && n.dirty
}

// markDirty marks id and all ancestors as needing recalculation.
// A dirty node always has dirty ancestors, so the walk stops early.
func (t *Tree) markDirty(id NodeID) {
	for id != 0 {
		n := t.nodeAt(id)
		if n.dirty {
			return
		}
		n.dirty = true
		id = n.parent
	}
}

// ComputeLayout lays out the subtree rooted at root within available.
// The root is placed at (0, 0). When nothing changed since the last call
// with the same root and available space, and no options are given, the
// call does nothing. Options always force a run so a tracing logger sees
// every node.
func (t *Tree) ComputeLayout(root NodeID, available AvailableSize, opts ...Option) error {
	if err := t.computeLayout(root, available, opts); err != nil {
		return err
	}
	t.invalidateAncestors(root)
	return nil
}

// computeLayout runs the engine without touching nodes outside the
// subtree, so disjoint subtrees can be computed concurrently.
func (t *Tree) computeLayout(root NodeID, available AvailableSize, opts []Option) error {
	n, err := t.get(root)
	if err != nil {
		return err
	}
	if len(opts) == 0 && !n.dirty && n.laidOutAsRoot && n.lastAvailable == available {
		return nil
	}

	layout.Calculate(engineView{t}, root, available, opts...)
	t.clean(root)
	n.laidOutAsRoot = true
	n.lastAvailable = available
	return nil
}

// invalidateAncestors marks the ancestors of a subtree root dirty: they
// hold a layout of root placed in their flow, which was just overwritten.
func (t *Tree) invalidateAncestors(root NodeID) {
	for a := t.nodeAt(root).parent; a != 0; a = t.nodeAt(a).parent {
		t.nodeAt(a).dirty = true
	}
}

// clean clears dirty flags below and including id.
func (t *Tree) clean(id NodeID) {
	n := t.nodeAt(id)
	n.dirty = false
	n.laidOutAsRoot = false
	for _, child := range n.children {
		t.clean(child)
	}
}

// GetLayout returns the most recently computed layout of id. Locations
// are relative to the parent's border box.
func (t *Tree) GetLayout(id NodeID) (Layout, error) {
	n, err := t.get(id)
	if err != nil {
		return Layout{}, err
	}
	return n.layout, nil
}

// engineView exposes the arena to the layout engine.
type engineView struct {
	t *Tree
}

func (v engineView) LayoutStyle(id NodeID) *Style        { return &v.t.nodeAt(id).style }
func (v engineView) LayoutChildren(id NodeID) []NodeID   { return v.t.nodeAt(id).children }
func (v engineView) LayoutMeasure(id NodeID) MeasureFunc { return v.t.nodeAt(id).measure }
func (v engineView) SetLayout(id NodeID, l Layout)       { v.t.nodeAt(id).layout = l }
