package zerophase

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/dsp/filter/design"
	"github.com/cwbudde/signalnoise/internal/testutil"
)

const (
	sampleRate = 1000.0
	numSamples = 1000
)

func TestApply_KeepsToneBelowCutoff(t *testing.T) {
	x := testutil.DeterministicSinePhase(5, sampleRate, 1, 0.3, numSamples)
	wantAmp, wantPhase := testutil.ToneAmplitude(x, 5, sampleRate)

	for _, spec := range []design.Spec{
		{Family: design.Butterworth, Pass: design.Lowpass, Order: 4, Cutoff: 0.1},
		{Family: design.Butterworth, Pass: design.Lowpass, Order: 7, Cutoff: 0.1},
		{Family: design.Bessel, Pass: design.Lowpass, Order: 4, Cutoff: 0.2},
		{Family: design.FIRWin, Pass: design.Lowpass, Order: 20, Cutoff: 0.2},
		{Family: design.FIRWin, Pass: design.Lowpass, Order: 100, Cutoff: 0.1},
	} {
		y, err := Apply(spec, x)
		if err != nil {
			t.Fatalf("%s: %v", spec, err)
		}
		if len(y) != len(x) {
			t.Fatalf("%s: len = %d, want %d", spec, len(y), len(x))
		}
		testutil.RequireFinite(t, y)

		amp, phase := testutil.ToneAmplitude(y, 5, sampleRate)
		if math.Abs(amp-wantAmp) > 1e-2 {
			t.Errorf("%s: amplitude %.5f, want %.5f", spec, amp, wantAmp)
		}
		if math.Abs(phase-wantPhase) > 1e-2 {
			t.Errorf("%s: phase %.5f, want %.5f", spec, phase, wantPhase)
		}
	}
}

func TestApply_RemovesToneAboveCutoff(t *testing.T) {
	low := testutil.DeterministicSine(5, sampleRate, 1, numSamples)
	high := testutil.DeterministicSine(200, sampleRate, 0.5, numSamples)
	x := testutil.Add(low, high)

	for _, tc := range []struct {
		spec design.Spec
		tol  float64
	}{
		{design.Spec{Family: design.Butterworth, Pass: design.Lowpass, Order: 4, Cutoff: 0.1}, 1e-4},
		// The Hamming passband droops by about half a percent at 5 Hz.
		{design.Spec{Family: design.FIRWin, Pass: design.Lowpass, Order: 100, Cutoff: 0.1}, 1e-2},
	} {
		y, err := Apply(tc.spec, x)
		if err != nil {
			t.Fatalf("%s: %v", tc.spec, err)
		}
		rms, err := testutil.RMSDiff(y, low, 100, 900)
		if err != nil {
			t.Fatal(err)
		}
		if rms > tc.tol {
			t.Errorf("%s: residual RMS %.2e in the interior", tc.spec, rms)
		}
	}
}

func TestApply_HighpassRemovesOffset(t *testing.T) {
	high := testutil.DeterministicSine(200, sampleRate, 1, numSamples)
	x := testutil.Add(testutil.DC(3, numSamples), high)

	for _, tc := range []struct {
		spec design.Spec
		tol  float64
	}{
		{design.Spec{Family: design.Butterworth, Pass: design.Highpass, Order: 4, Cutoff: 0.1}, 1e-4},
		{design.Spec{Family: design.Bessel, Pass: design.Highpass, Order: 3, Cutoff: 0.02}, 2e-2},
		{design.Spec{Family: design.FIRWin, Pass: design.Highpass, Order: 80, Cutoff: 0.1}, 1e-3},
	} {
		y, err := Apply(tc.spec, x)
		if err != nil {
			t.Fatalf("%s: %v", tc.spec, err)
		}
		rms, _ := testutil.RMSDiff(y, high, 100, 900)
		if rms > tc.tol {
			t.Errorf("%s: residual RMS %.2e", tc.spec, rms)
		}
	}
}

func TestApply_FFTPathMatchesStreamingFIR(t *testing.T) {
	x := testutil.Add(
		testutil.DeterministicSine(7, sampleRate, 1, numSamples),
		testutil.DeterministicNoise(11, 0.3, numSamples),
	)
	f, err := design.Spec{Family: design.FIRWin, Pass: design.Lowpass, Order: 120, Cutoff: 0.15}.Design()
	if err != nil {
		t.Fatal(err)
	}

	viaFFT, err := Filter(f, x)
	if err != nil {
		t.Fatal(err)
	}
	viaFIR, err := FiltFilt(firRuntime(f.Taps), x, PadLen(f))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, viaFFT, viaFIR, 1e-9)
}

func TestApply_SpectrumCrossCheck(t *testing.T) {
	x := testutil.Add(
		testutil.DeterministicSine(5, sampleRate, 1, numSamples),
		testutil.DeterministicSine(200, sampleRate, 1, numSamples),
	)
	y, err := Apply(design.Spec{Family: design.Butterworth, Pass: design.Lowpass, Order: 4, Cutoff: 0.1}, x)
	if err != nil {
		t.Fatal(err)
	}

	spec := fft.FFTReal(y)
	scale := 2 / float64(numSamples)
	if got := cmplx.Abs(spec[5]) * scale; math.Abs(got-1) > 1e-2 {
		t.Errorf("5 Hz bin amplitude %.4f, want 1", got)
	}
	if got := cmplx.Abs(spec[200]) * scale; got > 1e-2 {
		t.Errorf("200 Hz bin amplitude %.2e, want ~0", got)
	}
}

func TestApply_Deterministic(t *testing.T) {
	x := testutil.DeterministicNoise(3, 1, 500)
	spec := design.Spec{Family: design.Bessel, Pass: design.Lowpass, Order: 6, Cutoff: 0.3}
	a, _ := Apply(spec, x)
	b, _ := Apply(spec, x)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("run mismatch at %d", i)
		}
	}
}

func TestApply_Errors(t *testing.T) {
	x := testutil.Ones(10)
	if _, err := Apply(design.Spec{Family: design.Family(42), Pass: design.Lowpass, Order: 2, Cutoff: 0.2}, x); !errors.Is(err, core.ErrInvalidFilterType) {
		t.Fatalf("unknown family: %v", err)
	}
	if _, err := Apply(design.Spec{Family: design.Butterworth, Pass: design.Lowpass, Order: 2, Cutoff: 1.5}, x); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("bad cutoff: %v", err)
	}
	if _, err := Apply(design.Spec{Family: design.Butterworth, Pass: design.Lowpass, Order: 2, Cutoff: 0.2}, nil); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("empty signal: %v", err)
	}
	if _, err := Filter(nil, x); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("nil filter: %v", err)
	}
}

func TestPadLen(t *testing.T) {
	iir, _ := design.Spec{Family: design.Butterworth, Pass: design.Lowpass, Order: 4, Cutoff: 0.1}.Design()
	if got := PadLen(iir); got != 15 {
		t.Fatalf("IIR pad = %d, want 15", got)
	}
	firF, _ := design.Spec{Family: design.FIRWin, Pass: design.Lowpass, Order: 10, Cutoff: 0.1}.Design()
	if got := PadLen(firF); got != 33 {
		t.Fatalf("FIR pad = %d, want 33", got)
	}
}
