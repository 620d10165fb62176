// Package window generates the tapers used by FIR design and spectral
// analysis.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// Type identifies a window function. The zero value names no window.
type Type int

const (
	TypeRectangular Type = iota + 1
	TypeHann
	TypeHamming
	TypeBlackman
	TypeKaiser
)

var typeNames = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
	TypeKaiser:      "kaiser",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is one of the known windows.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType maps a window name such as "hamming" to its Type.
func ParseType(name string) (Type, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown window %q", core.ErrInvalidInput, name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta     float64
	periodic bool
}

// WithAlpha sets the Kaiser beta. Negative values are ignored.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.beta = v
		}
	}
}

// WithPeriodic selects the periodic form used for FFT framing. FIR design
// uses the symmetric form, the default.
func WithPeriodic() Option {
	return func(c *config) { c.periodic = true }
}

// Generate returns length coefficients of window t; nil for length <= 0.
// A single-sample window is [1]. Unknown types yield a rectangular window.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}
	cfg := config{beta: 8.6}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	span := float64(length - 1)
	if cfg.periodic {
		span = float64(length)
	}
	shape := shapeOf(t, cfg.beta)
	for n := range out {
		out[n] = shape(float64(n) / span)
	}
	return out
}

// shapeOf returns the window as a function of the position x in [0, 1].
func shapeOf(t Type, beta float64) func(x float64) float64 {
	switch t {
	case TypeHann:
		return cosineSum(0.5, 0.5)
	case TypeHamming:
		return cosineSum(0.54, 0.46)
	case TypeBlackman:
		return cosineSum(0.42, 0.5, 0.08)
	case TypeKaiser:
		norm := besselI0(beta)
		return func(x float64) float64 {
			r := 2*x - 1
			return besselI0(beta*math.Sqrt(math.Max(0, 1-r*r))) / norm
		}
	default:
		return func(float64) float64 { return 1 }
	}
}

// cosineSum returns a0 - a1 cos(2πx) + a2 cos(4πx) - ...
func cosineSum(a ...float64) func(x float64) float64 {
	return func(x float64) float64 {
		v, sign := 0.0, 1.0
		for k, ak := range a {
			v += sign * ak * math.Cos(2*math.Pi*float64(k)*x)
			sign = -sign
		}
		return v
	}
}

// besselI0 evaluates the modified Bessel function of the first kind, order
// zero, by its power series sum ((x/2)^k / k!)^2.
func besselI0(x float64) float64 {
	half := x / 2
	sum, term := 1.0, 1.0
	for k := 1; k < 500; k++ {
		f := half / float64(k)
		term *= f * f
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum
}

// Apply multiplies buf in place by window t.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: window size %d", core.ErrInvalidInput, size)
	}
	return Generate(TypeHann, size, opts...), nil
}

// CoherentGain returns the mean of the coefficients, the amplitude a
// windowed bin-centred sinusoid keeps relative to a rectangular window.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, fmt.Errorf("%w: empty window", core.ErrInvalidInput)
	}
	return floats.Sum(coeffs) / float64(len(coeffs)), nil
}
