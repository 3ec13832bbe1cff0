package blockflow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ComputeLayoutParallel lays out several disjoint subtrees concurrently,
// each as its own root within available. Roots must not contain each other.
// Subtrees not yet started when ctx is canceled are skipped and ctx.Err()
// is returned. The tree must not be mutated until the call returns.
func (t *Tree) ComputeLayoutParallel(ctx context.Context, roots []NodeID, available AvailableSize, opts ...Option) error {
	if err := t.checkDisjoint(roots); err != nil {
		return err
	}

	g, groupCtx := errgroup.WithContext(ctx)
	for _, root := range roots {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			return t.computeLayout(root, available, opts)
		})
	}
	err := g.Wait()

	// Some subtrees may have finished even when another failed.
	for _, root := range roots {
		t.invalidateAncestors(root)
	}
	return err
}

// checkDisjoint verifies every root exists and no root lies inside
// another root's subtree.
func (t *Tree) checkDisjoint(roots []NodeID) error {
	set := make(map[NodeID]struct{}, len(roots))
	for _, root := range roots {
		if _, err := t.get(root); err != nil {
			return err
		}
		if _, dup := set[root]; dup {
			return fmt.Errorf("root %d listed twice: %w", root, ErrOverlappingRoots)
		}
		set[root] = struct{}{}
	}
	for _, root := range roots {
		for a := t.nodeAt(root).parent; a != 0; a = t.nodeAt(a).parent {
			if _, ok := set[a]; ok {
				return fmt.Errorf("root %d is inside root %d: %w", root, a, ErrOverlappingRoots)
			}
		}
	}
	return nil
}
