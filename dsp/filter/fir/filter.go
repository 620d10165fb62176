package fir

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// Filter is a streaming FIR filter
//
//	y[n] = sum_k h[k] * x[n-k]
//
// that keeps the last len(h)-1 inputs between calls.
type Filter struct {
	taps []float64 // h
	rev  []float64 // h reversed, for dot products against the input
	hist []float64 // previous len(h)-1 inputs, oldest first
	work []float64
}

// New returns a Filter for a copy of taps. An empty kernel behaves as a
// single zero tap.
func New(taps []float64) *Filter {
	if len(taps) == 0 {
		taps = []float64{0}
	}
	h := append([]float64(nil), taps...)
	rev := make([]float64, len(h))
	for i, v := range h {
		rev[len(h)-1-i] = v
	}
	return &Filter{
		taps: h,
		rev:  rev,
		hist: make([]float64, len(h)-1),
	}
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	m := len(f.hist)
	y := f.taps[0] * x
	for k := 1; k <= m; k++ {
		y += f.taps[k] * f.hist[m-k]
	}
	if m > 0 {
		copy(f.hist, f.hist[1:])
		f.hist[m-1] = x
	}
	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}
	n := len(f.taps)
	f.work = append(append(f.work[:0], f.hist...), buf...)
	for i := range buf {
		buf[i] = floats.Dot(f.rev, f.work[i:i+n])
	}
	copy(f.hist, f.work[len(f.work)-len(f.hist):])
}

// Reset clears the input history.
func (f *Filter) Reset() {
	f.SetSteadyState(0)
}

// SetSteadyState fills the history with x0, so a constant input x0 yields
// DCGain()*x0 from the first sample on.
func (f *Filter) SetSteadyState(x0 float64) {
	for i := range f.hist {
		f.hist[i] = x0
	}
}

// DCGain returns the sum of the taps.
func (f *Filter) DCGain() float64 { return floats.Sum(f.taps) }

// Len returns the number of taps.
func (f *Filter) Len() int { return len(f.taps) }

// Order returns Len()-1.
func (f *Filter) Order() int { return len(f.taps) - 1 }

// Coefficients returns a copy of the taps.
func (f *Filter) Coefficients() []float64 {
	return append([]float64(nil), f.taps...)
}

// Response evaluates H at the normalized frequency w (0 is DC, 1 is
// Nyquist).
func (f *Filter) Response(w float64) complex128 {
	zi := cmplx.Exp(complex(0, -math.Pi*w))
	var h complex128
	for k := len(f.taps) - 1; k >= 0; k-- {
		h = h*zi + complex(f.taps[k], 0)
	}
	return h
}

// MagnitudeDB returns 20*log10|H| at the normalized frequency w.
func (f *Filter) MagnitudeDB(w float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(w)))
}
