package layout

// CollapsibleMarginSet accumulates adjoining vertical margins. The
// collapsed margin is the largest positive margin plus the most negative
// one.
type CollapsibleMarginSet struct {
	Positive float32 // >= 0
	Negative float32 // <= 0
}

// MarginSetFrom returns a set holding the single margin m.
func MarginSetFrom(m float32) CollapsibleMarginSet {
	if m >= 0 {
		return CollapsibleMarginSet{Positive: m}
	}
	return CollapsibleMarginSet{Negative: m}
}

// CollapseWithMargin adds one margin to the set.
func (s CollapsibleMarginSet) CollapseWithMargin(m float32) CollapsibleMarginSet {
	if m >= 0 {
		s.Positive = max(s.Positive, m)
	} else {
		s.Negative = min(s.Negative, m)
	}
	return s
}

// CollapseWithSet merges other into the set.
func (s CollapsibleMarginSet) CollapseWithSet(other CollapsibleMarginSet) CollapsibleMarginSet {
	s.Positive = max(s.Positive, other.Positive)
	s.Negative = min(s.Negative, other.Negative)
	return s
}

// Resolve returns the collapsed margin.
func (s CollapsibleMarginSet) Resolve() float32 {
	return s.Positive + s.Negative
}

// collapseFlags records which edges of a box let margins pass between the
// box and its children.
type collapseFlags struct {
	start, end bool
}
