package typography

import "errors"

// MeasureFunc reports the rendered width of a single line of text. The unit
// is whatever the caller's layout works in (pixels, millimeters, ...) as
// long as it is used consistently across measurements, target widths and box
// extents. Implementations must be deterministic and return non-negative
// values; the adapter subpackages provide measurers backed by real font
// metrics.
type MeasureFunc func(text string) float64

// Sentinel errors returned by the builders in this package. Each of these
// conditions would otherwise surface as a silent NaN or Inf propagating
// through layout math; they are rejected at build (or call) time instead.
var (
	// ErrNilMeasure indicates a nil MeasureFunc was supplied.
	ErrNilMeasure = errors.New("typography: measure function is nil")

	// ErrSampleMismatch indicates the calibration samples and distribution
	// differ in length, or both are empty. Calibration is a one-to-one
	// weighted combination of per-sample measurements, so the lengths must
	// match exactly.
	ErrSampleMismatch = errors.New("typography: samples and distribution must have equal non-zero length")

	// ErrBadWidth indicates a negative target width was passed to Truncate.
	ErrBadWidth = errors.New("typography: target width must be non-negative")

	// ErrZeroWidth indicates the measurer reported a non-positive width for
	// a string that does not fit, leaving no basis for extrapolation.
	ErrZeroWidth = errors.New("typography: measured width must be positive to truncate")

	// ErrZeroExtent indicates the reference box has zero extent in the
	// dimension chosen for scaling.
	ErrZeroExtent = errors.New("typography: reference box has zero extent in scaling dimension")

	// ErrZeroThreshold indicates a zero threshold, which would divide every
	// scaled size by zero.
	ErrZeroThreshold = errors.New("typography: threshold must be non-zero")
)

// EstimatorOptions configures TextWidthEstimator calibration.
//
// Samples      – short strings measured once each at build time.
// Distribution – relative frequency weight per sample, same length as
// Samples. The weights are combined as a dot product and are NOT
// normalized; callers who want a true weighted average are responsible for
// making the weights sum to 1.
type EstimatorOptions struct {
	Samples      []string
	Distribution []float64
}

// DefaultEstimatorOptions returns the stock calibration set: a wide glyph
// ("M"), a typical lowercase glyph ("n") and a narrow glyph ("."), weighted
// to approximate the mix found in ordinary Latin text.
func DefaultEstimatorOptions() EstimatorOptions {
	return EstimatorOptions{
		Samples:      []string{"M", "n", "."},
		Distribution: []float64{0.06, 0.8, 0.14},
	}
}

// EstimatorOption is a functional option for TextWidthEstimator.
type EstimatorOption func(*EstimatorOptions)

// WithSamples replaces the calibration sample set. Must be paired with a
// WithDistribution of equal length.
func WithSamples(samples ...string) EstimatorOption {
	return func(o *EstimatorOptions) {
		o.Samples = samples
	}
}

// WithDistribution replaces the per-sample frequency weights. Must be paired
// with a WithSamples of equal length.
func WithDistribution(weights ...float64) EstimatorOption {
	return func(o *EstimatorOptions) {
		o.Distribution = weights
	}
}

// ScaleOptions configures FontSizeToBox.
//
// Ratio    – multiplier applied to the reference dimension to obtain the
// base font size (default 1).
// ByHeight – scale relative to box height when true (default), box width
// when false.
type ScaleOptions struct {
	Ratio    float64
	ByHeight bool
}

// DefaultScaleOptions returns ScaleOptions with Ratio=1 and ByHeight=true.
func DefaultScaleOptions() ScaleOptions {
	return ScaleOptions{Ratio: 1, ByHeight: true}
}

// ScaleOption is a functional option for FontSizeToBox.
type ScaleOption func(*ScaleOptions)

// WithRatio sets the multiplier applied to the reference dimension.
func WithRatio(ratio float64) ScaleOption {
	return func(o *ScaleOptions) {
		o.Ratio = ratio
	}
}

// ByWidth makes the scaler track the box width instead of its height.
func ByWidth() ScaleOption {
	return func(o *ScaleOptions) {
		o.ByHeight = false
	}
}

// ScaleDirection selects the clamping policy of a threshold scaler.
type ScaleDirection int

const (
	// ShrinkOnly caps the scaled size at the default size: the result only
	// ever shrinks relative to it.
	ShrinkOnly ScaleDirection = -1

	// Free applies the ratio unclamped in both directions.
	Free ScaleDirection = 0

	// GrowOnly floors the scaled size at the default size: the result only
	// ever grows relative to it.
	GrowOnly ScaleDirection = 1
)
