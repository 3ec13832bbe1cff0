package blockflow

import "errors"

var (
	// ErrNodeNotFound is returned for an ID that is not in the tree.
	ErrNodeNotFound = errors.New("node not found")
	// ErrHasParent is returned when attaching a node that already has a parent.
	ErrHasParent = errors.New("node already has a parent")
	// ErrCycle is returned when attaching a node below itself.
	ErrCycle = errors.New("node would become its own ancestor")
	// ErrChildIndex is returned for an insertion index outside the child list.
	ErrChildIndex = errors.New("child index out of range")
	// ErrOverlappingRoots is returned when parallel roots share a subtree.
	ErrOverlappingRoots = errors.New("layout roots overlap")
)
