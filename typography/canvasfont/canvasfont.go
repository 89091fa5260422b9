// Package canvasfont adapts github.com/tdewolff/canvas font faces to the
// typography.MeasureFunc collaborator, so estimators can be calibrated
// against real glyph metrics.
//
// Example:
//
//	family := canvas.NewFontFamily("sans")
//	if err := family.LoadSystemFont("DejaVu Sans", canvas.FontRegular); err != nil { ... }
//	face := family.Face(14, canvas.Black, canvas.FontRegular, canvas.FontNormal)
//
//	estimate, err := typography.TextWidthEstimator(canvasfont.Measure(face))
//
// The returned widths are in the face's drawing units (canvas works in
// millimeters by default); use the same units for truncation targets and box
// extents.
package canvasfont

import (
	"github.com/tdewolff/canvas"

	"github.com/Spencerx/pts/typography"
)

// Measure wraps a canvas font face as a MeasureFunc. Each call performs a
// full text-width measurement on the face; pair it with
// typography.TextWidthEstimator when per-call metrics are too slow.
func Measure(face *canvas.FontFace) typography.MeasureFunc {
	return func(text string) float64 {
		return face.TextWidth(text)
	}
}
