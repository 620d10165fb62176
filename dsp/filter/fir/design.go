package fir

import (
	"fmt"
	"math"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/dsp/window"
)

// DesignOption configures windowed-sinc design.
type DesignOption func(*designConfig)

type designConfig struct {
	window     window.Type
	windowOpts []window.Option
}

func defaultDesignConfig() designConfig {
	return designConfig{window: window.TypeHamming}
}

// WithWindow selects the tapering window. The default is Hamming.
func WithWindow(t window.Type, opts ...window.Option) DesignOption {
	return func(c *designConfig) {
		c.window = t
		c.windowOpts = opts
	}
}

// Lowpass designs a linear-phase lowpass kernel with numTaps coefficients and
// unit gain at DC. cutoff is normalized to Nyquist and must lie in (0, 1).
func Lowpass(numTaps int, cutoff float64, opts ...DesignOption) ([]float64, error) {
	if err := validateDesign(numTaps, cutoff); err != nil {
		return nil, err
	}

	h := windowedSinc(numTaps, func(m float64) float64 {
		return cutoff * sinc(cutoff*m)
	}, opts)

	return scaleAt(h, 0), nil
}

// Highpass designs a linear-phase highpass kernel with numTaps coefficients
// and unit gain at Nyquist. A kernel with an even number of taps has a
// forced zero at Nyquist, so numTaps must be odd.
func Highpass(numTaps int, cutoff float64, opts ...DesignOption) ([]float64, error) {
	if err := validateDesign(numTaps, cutoff); err != nil {
		return nil, err
	}
	if numTaps%2 == 0 {
		return nil, fmt.Errorf("%w: highpass needs an odd number of taps, got %d", core.ErrInvalidInput, numTaps)
	}

	h := windowedSinc(numTaps, func(m float64) float64 {
		return sinc(m) - cutoff*sinc(cutoff*m)
	}, opts)

	return scaleAt(h, 1), nil
}

func validateDesign(numTaps int, cutoff float64) error {
	if numTaps < 1 {
		return fmt.Errorf("%w: fir taps must be >= 1, got %d", core.ErrInvalidInput, numTaps)
	}
	if !(cutoff > 0 && cutoff < 1) {
		return fmt.Errorf("%w: fir cutoff must be in (0, 1), got %v", core.ErrInvalidInput, cutoff)
	}
	return nil
}

// windowedSinc samples ideal(n - alpha) around the kernel centre and tapers
// the result with the configured window.
func windowedSinc(numTaps int, ideal func(m float64) float64, opts []DesignOption) []float64 {
	cfg := defaultDesignConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	alpha := float64(numTaps-1) / 2
	h := make([]float64, numTaps)
	for n := range h {
		h[n] = ideal(float64(n) - alpha)
	}
	window.Apply(cfg.window, h, cfg.windowOpts...)
	return h
}

// scaleAt normalizes h to unit magnitude at the normalized frequency f
// (0 is DC, 1 is Nyquist).
func scaleAt(h []float64, f float64) []float64 {
	alpha := float64(len(h)-1) / 2
	var s float64
	for n, c := range h {
		s += c * math.Cos(math.Pi*f*(float64(n)-alpha))
	}
	for n := range h {
		h[n] /= s
	}
	return h
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
