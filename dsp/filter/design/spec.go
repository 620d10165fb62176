package design

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/dsp/filter/design/pass"
	"github.com/cwbudde/signalnoise/dsp/window"
)

// Family identifies a filter design method. The zero value is invalid.
type Family int

const (
	Butterworth Family = iota + 1
	Bessel
	FIRWin
)

var familyNames = map[Family]string{
	Butterworth: "butterworth",
	Bessel:      "bessel",
	FIRWin:      "firwin",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Valid reports whether f is one of the known families.
func (f Family) Valid() bool {
	_, ok := familyNames[f]
	return ok
}

// IsFIR reports whether the family produces a finite impulse response.
func (f Family) IsFIR() bool { return f == FIRWin }

// ParseFamily maps a family tag such as "butterworth" to its Family.
func ParseFamily(name string) (Family, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for f, n := range familyNames {
		if n == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown filter family %q", core.ErrInvalidFilterType, name)
}

// Pass selects which side of the cutoff is kept. The zero value is invalid.
type Pass int

const (
	Lowpass Pass = iota + 1
	Highpass
)

func (p Pass) String() string {
	switch p {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return fmt.Sprintf("Pass(%d)", int(p))
	}
}

// Valid reports whether p is Lowpass or Highpass.
func (p Pass) Valid() bool { return p == Lowpass || p == Highpass }

// ParsePass maps "lowpass" or "highpass" to its Pass.
func ParsePass(name string) (Pass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lowpass":
		return Lowpass, nil
	case "highpass":
		return Highpass, nil
	default:
		return 0, fmt.Errorf("%w: unknown filter pass %q", core.ErrInvalidFilterType, name)
	}
}

// Spec describes a filter. Cutoff is normalized to Nyquist and must lie in
// the open interval (0, 1) for every family. Window tapers firwin kernels;
// the zero value selects Hamming. IIR families ignore it.
type Spec struct {
	Family Family
	Pass   Pass
	Order  int
	Cutoff float64
	Window window.Type
}

func (s Spec) String() string {
	str := fmt.Sprintf("%s %s order=%d cutoff=%g", s.Family, s.Pass, s.Order, s.Cutoff)
	if s.Family.IsFIR() && s.Window != 0 {
		str += " window=" + s.Window.String()
	}
	return str
}

// Validate checks the spec without designing anything.
func (s Spec) Validate() error {
	if !s.Family.Valid() {
		return fmt.Errorf("%w: filter family %v", core.ErrInvalidFilterType, s.Family)
	}
	if !s.Pass.Valid() {
		return fmt.Errorf("%w: filter pass %v", core.ErrInvalidFilterType, s.Pass)
	}
	if s.Order < 1 {
		return fmt.Errorf("%w: filter order must be >= 1, got %d", core.ErrInvalidInput, s.Order)
	}
	if math.IsNaN(s.Cutoff) || s.Cutoff <= 0 || s.Cutoff >= 1 {
		return fmt.Errorf("%w: cutoff must be in (0, 1) relative to Nyquist, got %v", core.ErrInvalidInput, s.Cutoff)
	}
	if s.Family == Bessel && s.Order > pass.MaxBesselOrder {
		return fmt.Errorf("%w: bessel order must be <= %d, got %d", core.ErrInvalidInput, pass.MaxBesselOrder, s.Order)
	}
	if s.Window != 0 && !s.Window.Valid() {
		return fmt.Errorf("%w: window %v", core.ErrInvalidFilterType, s.Window)
	}
	if s.Family == FIRWin && s.Pass == Highpass && s.Order%2 != 0 {
		return fmt.Errorf("%w: firwin highpass needs an even order, got %d", core.ErrInvalidInput, s.Order)
	}
	return nil
}
