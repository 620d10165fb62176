package biquad

import "gonum.org/v1/gonum/floats"

// Chain runs sections in series behind an input gain.
type Chain struct {
	sections []Section
	gain     float64
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithGain scales the input before the first section. Default 1.
func WithGain(g float64) ChainOption {
	return func(c *Chain) { c.gain = g }
}

// NewChain builds a cascade with one Section per coefficient set, all with
// empty delay lines.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	c := &Chain{
		sections: make([]Section, len(coeffs)),
		gain:     1,
	}
	for i, k := range coeffs {
		c.sections[i].Coefficients = k
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// ProcessSample filters one sample through the cascade.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place through the cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		floats.Scale(c.gain, buf)
	}
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset empties every delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// SetSteadyState primes the cascade for a constant input x0. Each section
// sees the DC level its predecessor settles to.
func (c *Chain) SetSteadyState(x0 float64) {
	level := x0 * c.gain
	for i := range c.sections {
		c.sections[i].SetSteadyState(level)
		level *= c.sections[i].DCGain()
	}
}

// Order returns the order of the cascade: 1 per first-order section, 2 per
// full section.
func (c *Chain) Order() int {
	n := 0
	for i := range c.sections {
		if c.sections[i].FirstOrder() {
			n++
		} else {
			n += 2
		}
	}
	return n
}

// Len returns the number of sections.
func (c *Chain) Len() int { return len(c.sections) }

// Gain returns the input gain.
func (c *Chain) Gain() float64 { return c.gain }

// Coefficients returns a copy of the section coefficients in order.
func (c *Chain) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].Coefficients
	}
	return out
}

// State returns a copy of every delay line.
func (c *Chain) State() [][2]float64 {
	out := make([][2]float64, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].z
	}
	return out
}

// SetState restores delay lines saved with State.
func (c *Chain) SetState(state [][2]float64) {
	for i := range min(len(state), len(c.sections)) {
		c.sections[i].z = state[i]
	}
}
