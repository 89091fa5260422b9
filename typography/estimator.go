package typography

import "unicode/utf8"

// TextWidthEstimator calibrates a fast width estimator against the given
// measurer and returns it as a MeasureFunc.
//
// At build time, measure is invoked exactly once per calibration sample; the
// per-sample widths are combined with the distribution weights as a dot
// product, yielding an average character width. The returned function prices
// any string as rune count × average width — an O(1) monospace-like
// approximation that never calls measure again.
//
// Returns ErrNilMeasure if measure is nil and ErrSampleMismatch if the
// sample set and distribution differ in length or are empty.
//
// Example:
//
//	estimate, err := TextWidthEstimator(face.TextWidth)
//	if err != nil { ... }
//	w := estimate("Hello layout") // ≈ width in face units, no metrics call
func TextWidthEstimator(measure MeasureFunc, opts ...EstimatorOption) (MeasureFunc, error) {
	if measure == nil {
		return nil, ErrNilMeasure
	}

	o := DefaultEstimatorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.Samples) == 0 || len(o.Samples) != len(o.Distribution) {
		return nil, ErrSampleMismatch
	}

	// Weighted sum, not a normalized average: the weights mean whatever the
	// caller made them mean.
	var avg float64
	for i, sample := range o.Samples {
		avg += o.Distribution[i] * measure(sample)
	}

	return func(text string) float64 {
		return float64(utf8.RuneCountInString(text)) * avg
	}, nil
}
