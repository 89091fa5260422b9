// Package geom provides the minimal 2D geometry the toolkit's layout
// heuristics are built on: points and axis-aligned bounding boxes.
//
// What:
//
//   - Pt is a plain 2D point value (X, Y float64).
//   - Bound is an axis-aligned extent with Min and Max corners.
//   - BoundOf derives the bounding box of any point sequence.
//
// Why:
//
//   - Font-size scaling (see the typography package) is defined relative to
//     how a bounding box's width or height changes; this package supplies
//     that box abstraction.
//   - Degenerate inputs never fail: an empty or collinear point set yields a
//     box with zero width and/or height, so callers decide what a zero
//     extent means for them.
//
// Complexity:
//
//   - BoundOf: O(n) over the input points, no allocations beyond the result.
//   - All Bound methods: O(1).
//
// Errors: none. Every operation is total; degeneracy is represented by zero
// extents, not by error values.
package geom
