package testutil

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// RequireSliceNearlyEqual fails t on a length mismatch or on the first
// element pair further apart than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i, g := range got {
		if d := math.Abs(g - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (|diff| %g > %g)", i, g, want[i], d, eps)
		}
	}
}

// RequireFinite fails t at the first NaN or infinite element.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	if ok, i := core.AllFinite(data); !ok {
		t.Fatalf("index %d: non-finite value %v", i, data[i])
	}
}

// MaxAbsDiff returns the Chebyshev distance between a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}

// RMSDiff returns the RMS of a-b over the half-open range [lo, hi).
func RMSDiff(a, b []float64, lo, hi int) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if lo < 0 || hi > len(a) || lo >= hi {
		return 0, fmt.Errorf("invalid range [%d,%d) for length %d", lo, hi, len(a))
	}
	return floats.Distance(a[lo:hi], b[lo:hi], 2) / math.Sqrt(float64(hi-lo)), nil
}
