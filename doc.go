// Package blockflow computes CSS block layout for a tree of styled boxes.
//
// Build a tree with New, NewNode and NewLeafWithMeasure, then call
// Tree.ComputeLayout and read results with Tree.GetLayout:
//
//	tree := blockflow.New()
//	text := tree.NewLeafWithMeasure(blockflow.DefaultStyle(), measure)
//	root, _ := tree.NewNode(style, text)
//	_ = tree.ComputeLayout(root, blockflow.DefiniteSize(800, 600))
//	l, _ := tree.GetLayout(text)
//
// Supported layout covers block flow with collapsing margins, box-sizing,
// min/max constraints, aspect ratios, relative and absolute positioning,
// scrollbar gutters and percentages. Locations in a Layout are relative to
// the parent's border box.
package blockflow
