package blockflow

// AbsoluteRect returns the border box of id in the coordinate space of its
// topmost ancestor, summing locations up the parent chain.
func (t *Tree) AbsoluteRect(id NodeID) (Rect, error) {
	n, err := t.get(id)
	if err != nil {
		return Rect{}, err
	}
	r := n.layout.BorderBox()
	for a := n.parent; a != 0; a = t.nodeAt(a).parent {
		loc := t.nodeAt(a).layout.Location
		r = r.Translate(loc)
	}
	return r, nil
}

// NodeAt finds the deepest node under root whose border box contains the
// point (x, y), given in root's parent coordinates. Later siblings win,
// matching paint order. ok is false when no node contains the point.
func (t *Tree) NodeAt(root NodeID, x, y float32) (id NodeID, ok bool) {
	n, err := t.get(root)
	if err != nil {
		return 0, false
	}
	return t.hit(root, n, x, y)
}

func (t *Tree) hit(id NodeID, n *node, x, y float32) (NodeID, bool) {
	bounds := n.layout.BorderBox()
	if !bounds.Contains(x, y) {
		return 0, false
	}

	// Check children in reverse order (last child paints on top)
	local := Point{X: x - bounds.X, Y: y - bounds.Y}
	for i := len(n.children) - 1; i >= 0; i-- {
		child := n.children[i]
		if hit, ok := t.hit(child, t.nodeAt(child), local.X, local.Y); ok {
			return hit, true
		}
	}

	// No child hit, this node is the target
	return id, true
}
