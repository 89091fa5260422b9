package typography_test

import (
	"strings"
	"testing"

	"github.com/Spencerx/pts/typography"
)

// BenchmarkEstimate measures the per-call cost of a calibrated estimator;
// this is the hot path layout code runs per label per frame.
func BenchmarkEstimate(b *testing.B) {
	estimate, err := typography.TextWidthEstimator(charWidth(7.2))
	if err != nil {
		b.Fatal(err)
	}
	text := strings.Repeat("benchmark label ", 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = estimate(text)
	}
}

// BenchmarkTruncate measures the single-pass truncation cost including the
// rune conversion of a mid-sized label.
func BenchmarkTruncate(b *testing.B) {
	measure := charWidth(7.2)
	text := strings.Repeat("benchmark label ", 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = typography.Truncate(measure, text, 200, "…")
	}
}
