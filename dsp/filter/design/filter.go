package design

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/dsp/filter/biquad"
	"github.com/cwbudde/signalnoise/dsp/filter/design/pass"
	"github.com/cwbudde/signalnoise/dsp/filter/fir"
)

// nyquistRate expresses normalized cutoffs as frequencies at a sample rate
// of 2, so Nyquist is 1.
const nyquistRate = 2.0

// Filter is a designed filter. IIR families fill Sections; firwin fills Taps.
// B and A are always set: the expanded numerator and denominator with A[0] = 1.
type Filter struct {
	Spec     Spec
	Sections []biquad.Coefficients
	Taps     []float64
	B, A     []float64
}

// Design validates s and computes its coefficients.
func (s Spec) Design() (*Filter, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	f := &Filter{Spec: s}
	switch s.Family {
	case FIRWin:
		taps, err := designFIR(s)
		if err != nil {
			return nil, err
		}
		f.Taps = taps
		f.B = append([]float64(nil), taps...)
		f.A = []float64{1}
		return f, nil
	default:
		sections := designIIR(s)
		if len(sections) == 0 {
			return nil, fmt.Errorf("%w: cannot design %s", core.ErrInvalidInput, s)
		}
		if !biquad.NewChain(sections).Stable() {
			return nil, fmt.Errorf("%w: %s has poles on or outside the unit circle", core.ErrInvalidInput, s)
		}
		f.Sections = sections
		f.B, f.A = biquad.TransferFunction(sections, 1)
		return f, nil
	}
}

func designIIR(s Spec) []biquad.Coefficients {
	switch {
	case s.Family == Butterworth && s.Pass == Lowpass:
		return pass.ButterworthLP(s.Cutoff, s.Order, nyquistRate)
	case s.Family == Butterworth && s.Pass == Highpass:
		return pass.ButterworthHP(s.Cutoff, s.Order, nyquistRate)
	case s.Family == Bessel && s.Pass == Lowpass:
		return pass.BesselLP(s.Cutoff, s.Order, nyquistRate)
	case s.Family == Bessel && s.Pass == Highpass:
		return pass.BesselHP(s.Cutoff, s.Order, nyquistRate)
	default:
		return nil
	}
}

func designFIR(s Spec) ([]float64, error) {
	var opts []fir.DesignOption
	if s.Window != 0 {
		opts = append(opts, fir.WithWindow(s.Window))
	}
	if s.Pass == Highpass {
		return fir.Highpass(s.Order+1, s.Cutoff, opts...)
	}
	return fir.Lowpass(s.Order+1, s.Cutoff, opts...)
}

// IsFIR reports whether the filter is a tap kernel rather than a cascade.
func (f *Filter) IsFIR() bool { return f.Taps != nil }

// Order returns the order of the transfer function.
func (f *Filter) Order() int { return len(f.B) - 1 }

// Chain returns a fresh biquad runtime for an IIR filter, nil for FIR.
func (f *Filter) Chain() *biquad.Chain {
	if f.IsFIR() {
		return nil
	}
	return biquad.NewChain(f.Sections)
}

// Response evaluates H at the normalized frequency w (0 is DC, 1 is
// Nyquist). IIR filters are evaluated section by section.
func (f *Filter) Response(w float64) complex128 {
	if !f.IsFIR() {
		return biquad.NewChain(f.Sections).Response(w)
	}
	return fir.New(f.Taps).Response(w)
}

// MagnitudeDB returns 20*log10|H| at the normalized frequency w.
func (f *Filter) MagnitudeDB(w float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(w)))
}
