// Package layout implements a pure-Go CSS block layout engine.
//
// It supports box-sizing, collapsing vertical margins, auto margins,
// absolute positioning against the padding box, aspect-ratio sizing,
// scrollbar gutter reservation for scroll containers, min/max constraints
// and percentage resolution against the containing block. Leaf content is
// measured through a caller supplied [MeasureFunc].
// Types are re-exported through the root blockflow package for public
// consumption.
//
// The main entry point is [Calculate], which takes a [Tree] and a root
// [NodeID] and writes a [Layout] for every node in the subtree.
// Values that are not yet known are carried as [Undefined] (a NaN) and
// tested with [IsDefined].
package layout
