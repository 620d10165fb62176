package biquad

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/signalnoise/dsp/conv"
	"github.com/cwbudde/signalnoise/dsp/core"
)

// unitDelay returns z^-1 on the unit circle at the normalized frequency w,
// where 0 is DC and 1 is Nyquist.
func unitDelay(w float64) complex128 {
	return cmplx.Exp(complex(0, -math.Pi*w))
}

// Response evaluates H at the normalized frequency w (1 is Nyquist).
func (c Coefficients) Response(w float64) complex128 {
	zi := unitDelay(w)
	num := (complex(c.B2, 0)*zi+complex(c.B1, 0))*zi + complex(c.B0, 0)
	den := (complex(c.A2, 0)*zi+complex(c.A1, 0))*zi + 1
	return num / den
}

// Response evaluates the cascade at the normalized frequency w as the
// product of the section responses.
func (c *Chain) Response(w float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(w)
	}
	return h
}

// MagnitudeDB returns 20*log10|H| at the normalized frequency w.
func (c *Chain) MagnitudeDB(w float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.Response(w)))
}

// Poles returns the roots of 1 + A1 z^-1 + A2 z^-2. A first-order section
// reports its single pole and 0.
func (c Coefficients) Poles() [2]complex128 {
	if c.A2 == 0 {
		return [2]complex128{complex(-c.A1, 0), 0}
	}
	// z^2 + A1 z + A2 = 0
	root := cmplx.Sqrt(complex(c.A1*c.A1-4*c.A2, 0))
	return [2]complex128{
		(complex(-c.A1, 0) + root) / 2,
		(complex(-c.A1, 0) - root) / 2,
	}
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	p := c.Poles()
	return cmplx.Abs(p[0]) < 1 && cmplx.Abs(p[1]) < 1
}

// Stable reports whether every section is stable.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}
	return true
}

// TransferFunction multiplies a cascade out into numerator b and
// denominator a in powers of z^-1, with a[0] = 1. Both have length
// order+1. Filtering should stay on the sections; the expanded form loses
// precision at high orders.
func TransferFunction(coeffs []Coefficients, gain float64) (b, a []float64) {
	b, a = []float64{gain}, []float64{1}
	for _, c := range coeffs {
		nb, na := []float64{c.B0, c.B1, c.B2}, []float64{1, c.A1, c.A2}
		if c.FirstOrder() {
			nb, na = nb[:2], na[:2]
		}
		b, a = polymul(b, nb), polymul(a, na)
	}
	return b, a
}

// TransferFunction expands the chain with its gain.
func (c *Chain) TransferFunction() (b, a []float64) {
	return TransferFunction(c.Coefficients(), c.gain)
}

// polymul multiplies two coefficient polynomials. Neither operand is ever
// empty, the only error conv.Convolve reports.
func polymul(p, q []float64) []float64 {
	out, _ := conv.Convolve(p, q)
	return out
}
