package fixture

import (
	"errors"
	"fmt"
	"math"

	"github.com/grindlemire/go-blockflow"
	"github.com/grindlemire/go-blockflow/measure"
)

// Builder creates arena nodes for a fixture.
type Builder struct {
	Styles StyleParser
	// Measurer sizes text leaves. Nil means a 10px glyph grid.
	Measurer measure.Measurer
}

// Build adds the fixture's nodes to tree and returns the root.
func (b Builder) Build(tree *blockflow.Tree, f *Fixture) (blockflow.NodeID, error) {
	if f.Root == nil {
		return 0, errors.New("fixture has no root")
	}
	m := b.Measurer
	if m == nil {
		m = measure.Glyph{Size: 10}
	}

	var build func(n *Node, path string) (blockflow.NodeID, error)
	build = func(n *Node, path string) (blockflow.NodeID, error) {
		style, err := b.Styles.Parse(n.Style)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}

		if n.Text != "" {
			if len(n.Children) > 0 {
				return 0, fmt.Errorf("%s: a text node cannot have children", path)
			}
			n.built = tree.NewLeafWithMeasure(style, measure.Func(m, n.Text))
			return n.built, nil
		}

		children := make([]blockflow.NodeID, len(n.Children))
		for i, child := range n.Children {
			if children[i], err = build(child, fmt.Sprintf("%s/%d", path, i)); err != nil {
				return 0, err
			}
		}
		if n.built, err = tree.NewNode(style, children...); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		return n.built, nil
	}
	return build(f.Root, "root")
}

// Mismatch is a computed value differing from its expectation.
type Mismatch struct {
	Path     string
	Property string
	Got      float32
	Want     float32
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s = %g, want %g", m.Path, m.Property, m.Got, m.Want)
}

// Check compares the layouts in tree against every expectation. Values
// within tolerance of the expectation match.
func (f *Fixture) Check(tree *blockflow.Tree, tolerance float32) ([]Mismatch, error) {
	var (
		mismatches []Mismatch
		firstErr   error
	)
	f.Walk(func(path string, n *Node) {
		if n.Expect == nil || firstErr != nil {
			return
		}
		id, ok := n.NodeID()
		if !ok {
			firstErr = fmt.Errorf("%s: fixture was not built", path)
			return
		}
		l, err := tree.GetLayout(id)
		if err != nil {
			firstErr = fmt.Errorf("%s: %w", path, err)
			return
		}

		for _, c := range []struct {
			property string
			want     *float32
			got      float32
		}{
			{"x", n.Expect.X, l.Location.X},
			{"y", n.Expect.Y, l.Location.Y},
			{"width", n.Expect.Width, l.Size.Width},
			{"height", n.Expect.Height, l.Size.Height},
		} {
			if c.want == nil || math.Abs(float64(c.got-*c.want)) <= float64(tolerance) {
				continue
			}
			mismatches = append(mismatches, Mismatch{Path: path, Property: c.property, Got: c.got, Want: *c.want})
		}
	})
	return mismatches, firstErr
}

// Run builds f in a new tree, lays it out within its viewport and checks
// it. The tree is returned for inspection.
func (b Builder) Run(f *Fixture, tolerance float32, opts ...blockflow.Option) (*blockflow.Tree, []Mismatch, error) {
	available, err := f.Available()
	if err != nil {
		return nil, nil, err
	}
	tree := blockflow.New()
	root, err := b.Build(tree, f)
	if err != nil {
		return nil, nil, err
	}
	if err := tree.ComputeLayout(root, available, opts...); err != nil {
		return nil, nil, err
	}
	mismatches, err := f.Check(tree, tolerance)
	return tree, mismatches, err
}
