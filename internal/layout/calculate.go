package layout

import "go.uber.org/zap"

// runMode selects whether a computation writes layouts or only sizes.
type runMode uint8

const (
	performLayout runMode = iota // Size the node and write child layouts
	computeSize                  // Size the node only
)

func (m runMode) String() string {
	if m == computeSize {
		return "compute-size"
	}
	return "perform-layout"
}

// sizingMode selects whether a node's own styled sizes still apply.
type sizingMode uint8

const (
	inherentSize sizingMode = iota // Styled sizes fill unknown dimensions
	contentSize                    // Known dimensions already account for styled sizes
)

// layoutInput is what a parent hands to a child computation.
type layoutInput struct {
	known      Size          // border-box dimensions fixed by the parent
	parentSize Size          // containing block for percentages
	available  AvailableSize // space left after the child's margins
	mode       runMode
	sizing     sizingMode
	collapse   collapseFlags // margins may collapse through the child's edges
}

// layoutOutput is what a child computation reports back.
type layoutOutput struct {
	size        Size
	contentSize Size
	scrollbar   Size

	// Margins of descendants that collapse through this box's edges.
	topMargin, bottomMargin CollapsibleMarginSet
	collapsesThrough        bool
}

type engine struct {
	tree Tree
	log  *zap.Logger
}

// Option configures a layout run.
type Option func(*engine)

// WithLogger traces every node computation at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(e *engine) {
		if log != nil {
			e.log = log
		}
	}
}

func newEngine(tree Tree, opts []Option) *engine {
	e := &engine{tree: tree, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout stored through
// tree.SetLayout. The root is placed at (0, 0).
//
// available specifies the root constraint. A definite available width
// stretches an auto-width root; content-sized available space sizes the
// root from its content.
func Calculate(tree Tree, root NodeID, available AvailableSize, opts ...Option) {
	e := newEngine(tree, opts)

	style := tree.LayoutStyle(root)
	if style.Display == DisplayNone {
		e.hideSubtree(root, 0)
		return
	}

	in, margin := rootInput(style, available, performLayout)
	out := e.computeNode(root, in)

	padding, border := resolvePaddingBorder(style, in.parentSize.Width)
	tree.SetLayout(root, Layout{
		Size:          out.size,
		ContentSize:   out.contentSize,
		ScrollbarSize: out.scrollbar,
		Border:        border,
		Padding:       padding,
		Margin:        margin,
	})
}

// rootInput resolves the root's own sizes against the available space.
// The root never collapses margins with its children.
func rootInput(style *Style, available AvailableSize, mode runMode) (layoutInput, Edges) {
	parent := available.values()
	padding, border := resolvePaddingBorder(style, parent.Width)
	margin := style.Margin.ResolveOrZero(parent.Width)
	pb := padding.Add(border).Sum()
	sizes := resolveBoxSizes(style, parent, boxSizingAdjustment(style, pb))

	known := sizes.clampedSize()
	if !IsDefined(known.Width) && available.Width.IsDefinite() {
		known.Width = clamp(available.Width.Value()-margin.Horizontal(), sizes.min.Width, sizes.max.Width)
	}
	known = known.Max(pb)

	return layoutInput{
		known:      known,
		parentSize: parent,
		available:  available,
		mode:       mode,
		sizing:     inherentSize,
	}, margin
}

// computeNode dispatches to the leaf or block algorithm.
func (e *engine) computeNode(id NodeID, in layoutInput) layoutOutput {
	if ce := e.log.Check(zap.DebugLevel, "compute node"); ce != nil {
		ce.Write(
			zap.Uint64("node", uint64(id)),
			zap.Stringer("mode", in.mode),
			zap.Stringer("known", in.known),
			zap.Stringer("available_width", in.available.Width),
			zap.Stringer("available_height", in.available.Height),
		)
	}

	style := e.tree.LayoutStyle(id)
	var out layoutOutput
	if children := e.tree.LayoutChildren(id); len(children) > 0 {
		out = e.computeBlock(style, children, in)
	} else {
		out = e.computeLeaf(id, style, in)
	}

	if ce := e.log.Check(zap.DebugLevel, "computed node"); ce != nil {
		ce.Write(
			zap.Uint64("node", uint64(id)),
			zap.Stringer("size", out.size),
			zap.Bool("collapses_through", out.collapsesThrough),
		)
	}
	return out
}

// hideSubtree writes zero layouts for a display:none node and everything
// below it.
func (e *engine) hideSubtree(id NodeID, order uint32) {
	e.tree.SetLayout(id, Layout{Order: order})
	for i, child := range e.tree.LayoutChildren(id) {
		e.hideSubtree(child, uint32(i))
	}
}

// contentContribution is how far a child placed at loc extends its
// parent's scrollable area, relative to the parent's border box.
func contentContribution(loc Point, out layoutOutput, style *Style) Size {
	extent := out.size
	if !style.OverflowX.IsScrollContainer() {
		extent.Width = max(extent.Width, out.contentSize.Width)
	}
	if !style.OverflowY.IsScrollContainer() {
		extent.Height = max(extent.Height, out.contentSize.Height)
	}
	return Size{Width: loc.X + extent.Width, Height: loc.Y + extent.Height}
}

// gutterSize reports a scrollbar gutter the way Layout.ScrollbarSize does.
func gutterSize(gutter Edges) Size {
	return Size{Width: gutter.Right, Height: gutter.Bottom}
}
