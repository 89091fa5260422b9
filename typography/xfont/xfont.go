// Package xfont adapts golang.org/x/image/font faces to the
// typography.MeasureFunc collaborator.
//
// Widths are reported in pixels, converted from the face's 26.6 fixed-point
// advance. Any font.Face works, from basicfont bitmaps to opentype faces.
package xfont

import (
	"golang.org/x/image/font"

	"github.com/Spencerx/pts/typography"
)

// Measure wraps an x/image font face as a MeasureFunc. Each call measures
// the full string via font.MeasureString.
func Measure(face font.Face) typography.MeasureFunc {
	return func(text string) float64 {
		return float64(font.MeasureString(face, text)) / 64
	}
}
