package typography

import "unicode/utf8"

// Truncate trims text to fit within width, appending tail when anything was
// cut. It returns the resulting string and the number of characters (runes)
// kept from the original text — the count never includes the tail.
//
// The cut point is a linear extrapolation from a single measurement of the
// whole string: measure is called exactly once, and the result is never
// re-measured after trimming. The extrapolation is exact when measure is
// linear in rune count (as the estimators built by TextWidthEstimator are)
// and approximate for real font metrics with kerning.
//
// When the text already fits (measure(text) <= width) it is returned
// unchanged together with its rune count. When it does not fit, room for the
// tail is reserved by cutting utf8.RuneCountInString(tail) additional runes,
// clamped at zero, so a sufficiently small width degenerates to the tail
// alone.
//
// Returns ErrNilMeasure if measure is nil, ErrBadWidth if width is negative,
// and ErrZeroWidth if measure reports a non-positive width for non-empty
// text — a broken measurer leaves no basis for extrapolation.
func Truncate(measure MeasureFunc, text string, width float64, tail string) (string, int, error) {
	if measure == nil {
		return "", 0, ErrNilMeasure
	}
	if width < 0 {
		return "", 0, ErrBadWidth
	}

	measured := measure(text)
	if text != "" && measured <= 0 {
		return "", 0, ErrZeroWidth
	}
	if measured <= width {
		return text, utf8.RuneCountInString(text), nil
	}

	// measured > width >= 0 here, so the fraction is in [0, 1). Multiply
	// before dividing so exact cases (width a whole multiple of the
	// per-rune width) stay exact in floating point.
	runes := []rune(text)
	keep := int(float64(len(runes)) * width / measured)
	keep -= utf8.RuneCountInString(tail)
	if keep < 0 {
		keep = 0
	}

	return string(runes[:keep]) + tail, keep, nil
}
