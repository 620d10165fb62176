package biquad

// Coefficients of one section, normalized so that a0 = 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// A first-order section leaves B2 and A2 at zero.
type Coefficients struct {
	B0, B1, B2 float64 // numerator
	A1, A2     float64 // denominator
}

// FirstOrder reports whether the section has no z^-2 terms.
func (c Coefficients) FirstOrder() bool { return c.B2 == 0 && c.A2 == 0 }

// DCGain returns H(1). A section with a pole at z = 1 reports 0.
func (c Coefficients) DCGain() float64 {
	den := 1 + c.A1 + c.A2
	if den == 0 {
		return 0
	}
	return (c.B0 + c.B1 + c.B2) / den
}

// Section runs Coefficients in transposed direct form II:
//
//	y    = B0*x + z[0]
//	z[0] = B1*x - A1*y + z[1]
//	z[1] = B2*x - A2*y
type Section struct {
	Coefficients

	z [2]float64
}

// NewSection returns a Section with an empty delay line.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.z[0]
	s.z[0] = s.B1*x - s.A1*y + s.z[1]
	s.z[1] = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	c := s.Coefficients
	z0, z1 := s.z[0], s.z[1]
	for i, x := range buf {
		y := c.B0*x + z0
		z0 = c.B1*x - c.A1*y + z1
		z1 = c.B2*x - c.A2*y
		buf[i] = y
	}
	s.z = [2]float64{z0, z1}
}

// Reset empties the delay line.
func (s *Section) Reset() { s.z = [2]float64{} }

// State returns the delay line.
func (s *Section) State() [2]float64 { return s.z }

// SetState overwrites the delay line.
func (s *Section) SetState(z [2]float64) { s.z = z }

// SetSteadyState loads the delay line a constant input x0 settles to, so
// feeding x0 produces DCGain()*x0 from the first sample on.
func (s *Section) SetSteadyState(x0 float64) {
	y := s.DCGain() * x0
	s.z[1] = s.B2*x0 - s.A2*y
	s.z[0] = y - s.B0*x0
}
