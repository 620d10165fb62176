package frequency

import (
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/dsp/window"
)

// ErrEmptySignal is returned when there is nothing to transform. It wraps
// core.ErrInvalidInput.
var ErrEmptySignal = fmt.Errorf("%w: frequency: empty signal", core.ErrInvalidInput)

// Spectrum returns the one-sided magnitude spectrum of x (fftSize/2+1 bins,
// fftSize the next power of two >= len(x)). x is weighted with a periodic
// Hann window and the result is scaled so that a sinusoid of amplitude A
// centred on a bin reads A.
func Spectrum(x []float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptySignal
	}
	if ok, idx := core.AllFinite(x); !ok {
		return nil, fmt.Errorf("%w: non-finite sample at index %d", core.ErrInvalidInput, idx)
	}

	fftSize := 1 << bits.Len(uint(n-1))

	w, err := window.Hann(n, window.WithPeriodic())
	if err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}
	cg, err := window.CoherentGain(w)
	if err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}
	norm := cg * float64(n) / 2
	if n == 1 {
		norm = 1
	}

	buf := make([]complex128, fftSize)
	for i, v := range x {
		buf[i] = complex(v*w[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("frequency: fft plan: %w", err)
	}
	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("frequency: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(buf[k])
		im[k] = imag(buf[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	floats.Scale(1/norm, mag)
	return mag, nil
}

// Analyze is Spectrum followed by Calculate.
func Analyze(x []float64, sampleRate float64) (Stats, error) {
	if sampleRate <= 0 {
		return Stats{}, fmt.Errorf("%w: sample rate %v", core.ErrInvalidInput, sampleRate)
	}
	mag, err := Spectrum(x)
	if err != nil {
		return Stats{}, err
	}
	return Calculate(mag, sampleRate), nil
}
