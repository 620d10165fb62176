// Package snr scores a candidate signal against a reference by its
// signal-to-noise ratio in decibels.
//
// The noise is the residual candidate - reference. Signal and noise powers
// are mean squares over the whole vector.
package snr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// Policy decides what DB reports when the residual is exactly zero.
type Policy int

const (
	// PolicyInf reports +Inf for a perfect match. This is the default.
	PolicyInf Policy = iota
	// PolicyError reports core.ErrDegenerateInput for a perfect match.
	PolicyError
)

func (p Policy) String() string {
	switch p {
	case PolicyInf:
		return "inf"
	case PolicyError:
		return "error"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Option configures DB.
type Option func(*config)

type config struct {
	policy Policy
}

// WithPolicy selects the zero-noise policy.
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// Powers returns the mean-square power of reference and of the residual
// candidate - reference.
func Powers(reference, candidate []float64) (signal, noise float64, err error) {
	if len(reference) == 0 {
		return 0, 0, fmt.Errorf("%w: empty reference", core.ErrInvalidInput)
	}
	if len(reference) != len(candidate) {
		return 0, 0, fmt.Errorf("%w: length mismatch: reference %d, candidate %d",
			core.ErrInvalidInput, len(reference), len(candidate))
	}
	if ok, i := core.AllFinite(reference); !ok {
		return 0, 0, fmt.Errorf("%w: non-finite reference sample at index %d", core.ErrInvalidInput, i)
	}
	if ok, i := core.AllFinite(candidate); !ok {
		return 0, 0, fmt.Errorf("%w: non-finite candidate sample at index %d", core.ErrInvalidInput, i)
	}

	residual := make([]float64, len(reference))
	floats.SubTo(residual, candidate, reference)

	n := float64(len(reference))
	return floats.Dot(reference, reference) / n, floats.Dot(residual, residual) / n, nil
}

// DB returns 10*log10(signal power / noise power). The result is never NaN:
// a zero residual gives +Inf or an error according to the policy, and a zero
// reference with a zero residual is always core.ErrDegenerateInput.
func DB(reference, candidate []float64, opts ...Option) (float64, error) {
	cfg := config{policy: PolicyInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	sp, np, err := Powers(reference, candidate)
	if err != nil {
		return 0, err
	}

	if np == 0 {
		if sp == 0 || cfg.policy == PolicyError {
			return 0, fmt.Errorf("%w: zero noise power (signal power %g)", core.ErrDegenerateInput, sp)
		}
		return math.Inf(1), nil
	}

	return core.LinearPowerToDB(sp / np), nil
}
