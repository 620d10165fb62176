package pass

import (
	"math"
	"testing"
)

func TestBesselLP_Basic(t *testing.T) {
	sections := BesselLP(1000, 4, 48000)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections for order 4, got %d", len(sections))
	}
	for _, s := range sections {
		assertFiniteCoefficients(t, s)
		assertStableSection(t, s)
	}
}

func TestBesselLP_CutoffAttenuation(t *testing.T) {
	sr := 48000.0
	fc := 1000.0
	for order := 1; order <= MaxBesselOrder; order++ {
		atCutoff := cascadeMagDB(BesselLP(fc, order, sr), fc, sr)
		if !almostEqual(atCutoff, -3.01, 0.05) {
			t.Errorf("order %d: gain at cutoff = %.3f dB, want -3.01", order, atCutoff)
		}
		if dc := cascadeMagDB(BesselLP(fc, order, sr), 0, sr); !almostEqual(dc, 0, 1e-9) {
			t.Errorf("order %d: DC gain = %v dB, want 0", order, dc)
		}
	}
}

func TestBesselLP_Rolloff(t *testing.T) {
	sr := 48000.0
	fc := 1000.0

	// Bessel rolls off more gently than Butterworth at the same order.
	for _, order := range []int{4, 6, 8} {
		besselAtten := cascadeMagDB(BesselLP(fc, order, sr), 2*fc, sr)
		bwAtten := cascadeMagDB(ButterworthLP(fc, order, sr), 2*fc, sr)
		if besselAtten <= bwAtten {
			t.Errorf("order %d: Bessel at 2fc (%.2f dB) should be less attenuated than Butterworth (%.2f dB)",
				order, besselAtten, bwAtten)
		}
	}
}

func TestBesselLP_GroupDelayFlat(t *testing.T) {
	sr := 48000.0
	fc := 2000.0

	for _, order := range []int{4, 6} {
		sections := BesselLP(fc, order, sr)

		df := 1.0
		minGD, maxGD := math.Inf(1), math.Inf(-1)
		for f := 100.0; f <= fc*0.5; f += 50 {
			phase1 := cascadePhase(sections, f-df/2, sr)
			phase2 := cascadePhase(sections, f+df/2, sr)
			dp := math.Remainder(phase2-phase1, 2*math.Pi)
			gd := -dp / (2 * math.Pi * df)
			minGD = math.Min(minGD, gd)
			maxGD = math.Max(maxGD, gd)
		}

		meanGD := (minGD + maxGD) / 2
		if variation := (maxGD - minGD) / meanGD; variation > 0.2 {
			t.Errorf("order %d: group delay variation = %.1f%%, expected < 20%%", order, variation*100)
		}
	}
}

func TestBesselHP_HighFreqGain(t *testing.T) {
	sr := 48000.0
	for order := 1; order <= MaxBesselOrder; order++ {
		sections := BesselHP(1000, order, sr)
		if len(sections) != (order+1)/2 {
			t.Fatalf("order %d: sections=%d", order, len(sections))
		}
		for _, s := range sections {
			assertFiniteCoefficients(t, s)
			assertStableSection(t, s)
		}
		if ny := cascadeMagDB(sections, sr/2, sr); !almostEqual(ny, 0, 1e-6) {
			t.Errorf("order %d: Nyquist gain = %v dB, want 0", order, ny)
		}
		if low := cascadeMagDB(sections, 50, sr); low > -20 {
			t.Errorf("order %d: gain at 50 Hz = %.2f dB, expected strong attenuation", order, low)
		}
	}
}

func TestBessel_EdgeCases(t *testing.T) {
	if BesselLP(1000, 0, 48000) != nil {
		t.Fatal("expected nil for order 0")
	}
	if BesselLP(1000, MaxBesselOrder+1, 48000) != nil {
		t.Fatal("expected nil for order beyond table")
	}
	if BesselHP(30000, 4, 48000) != nil {
		t.Fatal("expected nil for cutoff above Nyquist")
	}
	if BesselHP(1000, 4, -1) != nil {
		t.Fatal("expected nil for negative sample rate")
	}
}
