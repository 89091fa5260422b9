// Package pts is the core of a small 2D points toolkit: geometry
// primitives plus fast typography-layout heuristics for laying out
// text inside shapes and responsive canvases.
//
// What lives here:
//
//	geom/                 — 2D points and axis-aligned bounding boxes
//	typography/           — width estimation, truncation, font-size scaling
//	typography/canvasfont — measurer adapter for github.com/tdewolff/canvas faces
//	typography/xfont      — measurer adapter for golang.org/x/image/font faces
//
// Why:
//
//   - Exact glyph measurement is expensive; layout code often only needs a
//     fast, approximate answer ("does this label fit?", "how big should this
//     caption be inside that box?").
//   - Every heuristic is a pure function or a factory returning an immutable
//     closure — no shared state, safe for concurrent use.
//
// The actual text measurement is always a caller-supplied collaborator
// (typography.MeasureFunc); the adapter subpackages provide ready-made
// measurers backed by real font metrics.
//
//	go get github.com/Spencerx/pts/typography
package pts
