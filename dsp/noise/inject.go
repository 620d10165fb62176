package noise

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// Injector draws noise from an owned random source. It is not safe for
// concurrent use: draws from the shared *rand.Rand would interleave.
type Injector struct {
	rng *rand.Rand
}

type config struct {
	rng *rand.Rand
}

// Option configures an Injector.
type Option func(*config)

// WithRNG sets the random source. Passing the same seeded source twice
// reproduces the same draws.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) {
		cfg.rng = rng
	}
}

// WithSeed seeds a fresh PCG source.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.rng = NewSource(seed)
	}
}

// NewSource returns a deterministic PCG-backed generator for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

// NewInjector creates an Injector. Without WithRNG or WithSeed the source
// is seeded from the runtime's entropy.
func NewInjector(opts ...Option) *Injector {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Injector{rng: cfg.rng}
}

// Generate returns n noise samples drawn in index order.
func (in *Injector) Generate(n int, spec Spec) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: noise length must be >= 0: %d", core.ErrInvalidInput, n)
	}

	out := make([]float64, n)
	in.fill(out, spec)
	return out, nil
}

// Inject returns x + noise as a new slice. x is not modified.
func (in *Injector) Inject(x []float64, spec Spec) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	in.fill(out, spec)
	for i, v := range x {
		out[i] += v
	}
	return out, nil
}

// fill writes one draw per element. A zero intensity still consumes the
// same number of draws so the stream position does not depend on it.
func (in *Injector) fill(dst []float64, spec Spec) {
	switch spec.Kind {
	case Gaussian:
		sigma := spec.Intensity
		for i := range dst {
			dst[i] = in.rng.NormFloat64() * sigma
		}
	case Impulse:
		p := core.Clamp(spec.Intensity, 0, 1)
		for i := range dst {
			if in.rng.Float64() < p {
				dst[i] = 1
			} else {
				dst[i] = 0
			}
		}
	case Random:
		scale := spec.Intensity
		for i := range dst {
			dst[i] = in.rng.Float64() * scale
		}
	}
}

// Inject adds noise described by spec to x using rng.
func Inject(x []float64, spec Spec, rng *rand.Rand) ([]float64, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", core.ErrInvalidInput)
	}
	return NewInjector(WithRNG(rng)).Inject(x, spec)
}
