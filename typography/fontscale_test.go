package typography_test

import (
	"testing"

	"github.com/Spencerx/pts/geom"
	"github.com/Spencerx/pts/typography"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box is a test helper building a Bound with the given extents anchored at
// the origin.
func box(w, h float64) geom.Bound {
	return geom.BoundOf(geom.P(0, 0), geom.P(w, h))
}

// TestFontSizeToBox_Proportional verifies the linear scaling law: doubling
// the reference dimension doubles the returned font size at ratio 1.
func TestFontSizeToBox_Proportional(t *testing.T) {
	scale, err := typography.FontSizeToBox(box(100, 20))
	require.NoError(t, err)

	assert.Equal(t, 20.0, scale(box(100, 20)), "same box reproduces the base size")
	assert.Equal(t, 40.0, scale(box(100, 40)), "double height doubles the size")
	assert.Equal(t, 10.0, scale(box(100, 10)), "half height halves the size")
}

// TestFontSizeToBox_Ratio verifies the ratio multiplies the base size
// without affecting the scaling law.
func TestFontSizeToBox_Ratio(t *testing.T) {
	scale, err := typography.FontSizeToBox(box(100, 20), typography.WithRatio(0.5))
	require.NoError(t, err)

	assert.Equal(t, 10.0, scale(box(100, 20)), "base size is ratio × reference height")
	assert.Equal(t, 20.0, scale(box(100, 40)), "scaling stays linear under a ratio")
}

// TestFontSizeToBox_ByWidth verifies the scaler tracks width when
// configured so, ignoring height changes entirely.
func TestFontSizeToBox_ByWidth(t *testing.T) {
	scale, err := typography.FontSizeToBox(box(50, 20), typography.ByWidth())
	require.NoError(t, err)

	assert.Equal(t, 50.0, scale(box(50, 999)), "height changes are ignored")
	assert.Equal(t, 100.0, scale(box(100, 20)), "double width doubles the size")
}

// TestFontSizeToBox_ZeroExtent verifies a degenerate reference box is
// rejected at build time instead of dividing by zero on every call.
func TestFontSizeToBox_ZeroExtent(t *testing.T) {
	_, err := typography.FontSizeToBox(box(100, 0))
	assert.ErrorIs(t, err, typography.ErrZeroExtent, "zero reference height must error")

	_, err = typography.FontSizeToBox(box(0, 100), typography.ByWidth())
	assert.ErrorIs(t, err, typography.ErrZeroExtent, "zero reference width must error")

	// The unused dimension may be degenerate.
	_, err = typography.FontSizeToBox(box(0, 100))
	assert.NoError(t, err, "zero width is fine when scaling by height")
}

// TestFontSizeToThreshold_Free verifies unclamped scaling in both
// directions, including negative values.
func TestFontSizeToThreshold_Free(t *testing.T) {
	scale, err := typography.FontSizeToThreshold(10, typography.Free)
	require.NoError(t, err)

	assert.Equal(t, 12.0, scale(12, 10), "val at threshold reproduces the default")
	assert.Equal(t, 24.0, scale(12, 20), "val above threshold grows freely")
	assert.Equal(t, 6.0, scale(12, 5), "val below threshold shrinks freely")
	assert.Equal(t, -12.0, scale(12, -10), "negative values pass through unclamped")
}

// TestFontSizeToThreshold_ShrinkOnly verifies the result never exceeds the
// default size.
func TestFontSizeToThreshold_ShrinkOnly(t *testing.T) {
	scale, err := typography.FontSizeToThreshold(10, typography.ShrinkOnly)
	require.NoError(t, err)

	assert.Equal(t, 6.0, scale(12, 5), "below threshold shrinks")
	assert.Equal(t, 12.0, scale(12, 20), "above threshold clamps at the default")
	assert.Equal(t, 12.0, scale(12, 10), "at threshold stays at the default")
}

// TestFontSizeToThreshold_GrowOnly verifies the result never falls below
// the default size.
func TestFontSizeToThreshold_GrowOnly(t *testing.T) {
	scale, err := typography.FontSizeToThreshold(10, typography.GrowOnly)
	require.NoError(t, err)

	assert.Equal(t, 24.0, scale(12, 20), "above threshold grows")
	assert.Equal(t, 12.0, scale(12, 5), "below threshold clamps at the default")
}

// TestFontSizeToThreshold_ZeroThreshold verifies threshold 0 is rejected at
// build time.
func TestFontSizeToThreshold_ZeroThreshold(t *testing.T) {
	_, err := typography.FontSizeToThreshold(0, typography.Free)
	assert.ErrorIs(t, err, typography.ErrZeroThreshold)
}
