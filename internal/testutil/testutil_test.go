package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1, 48)
	if len(s) != 48 || math.Abs(s[0]) > 1e-15 {
		t.Fatalf("len=%d s[0]=%v", len(s), s[0])
	}
	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("quarter period = %v, want 1", s[12])
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 64)
	b := DeterministicNoise(42, 0.5, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
	for i, v := range a {
		if v < -0.5 || v > 0.5 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}
	if c := DeterministicNoise(43, 0.5, 64); c[0] == a[0] && c[1] == a[1] {
		t.Fatal("different seeds produced the same prefix")
	}
}

func TestDCAndAdd(t *testing.T) {
	RequireSliceNearlyEqual(t, DC(2.5, 3), []float64{2.5, 2.5, 2.5}, 0)
	RequireSliceNearlyEqual(t, Add([]float64{1, 2, 3}, Ones(2)), []float64{2, 3}, 0)
}

func TestToneAmplitude(t *testing.T) {
	x := DeterministicSinePhase(5, 1000, 0.75, 0.3, 1000)
	amp, ph := ToneAmplitude(x, 5, 1000)
	if math.Abs(amp-0.75) > 1e-9 || math.Abs(ph-0.3) > 1e-9 {
		t.Fatalf("amp=%v phase=%v, want 0.75, 0.3", amp, ph)
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil || d != 1 {
		t.Fatalf("MaxAbsDiff = %v, %v; want 1", d, err)
	}
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRMSDiff(t *testing.T) {
	d, err := RMSDiff([]float64{0, 0, 5, 5}, []float64{0, 0, 2, 1}, 2, 4)
	if err != nil || math.Abs(d-math.Sqrt(12.5)) > 1e-12 {
		t.Fatalf("RMSDiff = %v, %v; want %v", d, err, math.Sqrt(12.5))
	}
	if _, err := RMSDiff([]float64{1}, []float64{1}, 1, 1); err == nil {
		t.Fatal("expected error for empty range")
	}
}
