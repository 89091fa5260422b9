// Package typography provides fast, approximate sizing heuristics for
// single-line text: estimating rendered width without a per-call metrics
// lookup, truncating text to a pixel budget, and deriving font-size scaling
// functions from a bounding box or a numeric threshold.
//
// What:
//
//   - TextWidthEstimator calibrates an average character width from a small
//     sample set and returns a MeasureFunc that prices any string as
//     rune count × average width.
//   - Truncate trims a string to a target width in a single pass, optionally
//     appending an overflow tail such as "…".
//   - FontSizeToBox returns a function that rescales a font size in
//     proportion to how a reference box's height (or width) changes.
//   - FontSizeToThreshold returns a function that rescales a font size
//     relative to a fixed threshold, optionally clamped to only shrink or
//     only grow.
//
// Why:
//
//   - Calling real font metrics for every candidate layout is expensive;
//     responsive canvases and label placement only need a fast estimate.
//   - Each builder returns an immutable closure with no shared state, so the
//     results are safe to reuse across goroutines (provided the supplied
//     MeasureFunc is itself pure).
//
// Accuracy trade-off:
//
//	The estimator assumes uniform character width (a monospace-like
//	approximation), and Truncate extrapolates linearly from a single
//	measurement of the full string. Both are deliberately inexact for
//	proportional fonts with kerning; they trade accuracy for O(1) and
//	single-pass cost. Exact glyph measurement, Unicode segmentation and
//	multi-line wrapping are out of scope.
//
// Errors (sentinel):
//
//   - ErrNilMeasure     — a nil MeasureFunc was supplied.
//   - ErrSampleMismatch — calibration samples and distribution differ in
//     length, or are empty.
//   - ErrBadWidth       — Truncate was given a negative target width.
//   - ErrZeroWidth      — the measurer reported a non-positive width for a
//     string that needs truncation.
//   - ErrZeroExtent     — the reference box has zero extent in the chosen
//     scaling dimension.
//   - ErrZeroThreshold  — FontSizeToThreshold was given threshold 0.
package typography
