package typography

import (
	"math"

	"github.com/Spencerx/pts/geom"
)

// BoxScaleFunc maps a bounding box to a font size. Produced by
// FontSizeToBox.
type BoxScaleFunc func(box geom.Bound) float64

// ThresholdScaleFunc rescales defaultSize by how val compares to a fixed
// threshold. Produced by FontSizeToThreshold.
type ThresholdScaleFunc func(defaultSize, val float64) float64

// FontSizeToBox builds a font-size scaler anchored to a reference box: the
// returned function scales linearly with how the chosen dimension of its
// argument compares to the same dimension of ref.
//
// At build time the reference dimension h (height by default, width with
// ByWidth) and the base size f = ratio × h are fixed. A call with a new box
// returns f × (dim(box) / h), so a box with double the reference dimension
// yields double the font size.
//
// Returns ErrZeroExtent when ref has zero extent in the chosen dimension;
// every later call would otherwise divide by zero.
func FontSizeToBox(ref geom.Bound, opts ...ScaleOption) (BoxScaleFunc, error) {
	o := DefaultScaleOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h := ref.Height()
	if !o.ByHeight {
		h = ref.Width()
	}
	if h == 0 {
		return nil, ErrZeroExtent
	}
	f := o.Ratio * h

	byHeight := o.ByHeight

	return func(box geom.Bound) float64 {
		nh := box.Height()
		if !byHeight {
			nh = box.Width()
		}

		return f * (nh / h)
	}, nil
}

// FontSizeToThreshold builds a font-size scaler relative to a fixed
// threshold. The returned function computes d = defaultSize × val/threshold
// and applies the clamping policy selected by dir: ShrinkOnly caps d at
// defaultSize, GrowOnly floors d at defaultSize, and Free returns d
// unclamped. Any negative dir behaves as ShrinkOnly and any positive dir as
// GrowOnly.
//
// Returns ErrZeroThreshold when threshold is 0.
func FontSizeToThreshold(threshold float64, dir ScaleDirection) (ThresholdScaleFunc, error) {
	if threshold == 0 {
		return nil, ErrZeroThreshold
	}

	switch {
	case dir < 0:
		return func(defaultSize, val float64) float64 {
			return math.Min(defaultSize*val/threshold, defaultSize)
		}, nil
	case dir > 0:
		return func(defaultSize, val float64) float64 {
			return math.Max(defaultSize*val/threshold, defaultSize)
		}, nil
	default:
		return func(defaultSize, val float64) float64 {
			return defaultSize * val / threshold
		}, nil
	}
}
