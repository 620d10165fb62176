package simulate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/dsp/filter/zerophase"
	"github.com/cwbudde/signalnoise/dsp/noise"
	"github.com/cwbudde/signalnoise/dsp/signal"
	"github.com/cwbudde/signalnoise/measure/snr"
)

const (
	stageSynthesize = "synthesize"
	stageNoise      = "noise"
	stageFilter     = "filter"
	stageEvaluate   = "evaluate"
)

// Result bundles every vector of one run. All slices have the same length
// and are owned by the caller.
type Result struct {
	ID          uuid.UUID
	Time        []float64
	Original    []float64
	Noisy       []float64
	Filtered    []float64
	NoisySNR    float64 // dB, noisy vs original
	FilteredSNR float64 // dB, filtered vs original
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxSamples bounds the number of samples per run.
func WithMaxSamples(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.maxSamples = n
		}
	}
}

// WithSNRPolicy selects how a zero residual is scored.
func WithSNRPolicy(p snr.Policy) Option {
	return func(s *Simulator) { s.policy = p }
}

// WithRand sets the random source used for noise.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed seeds a deterministic random source.
func WithSeed(seed uint64) Option {
	return func(s *Simulator) { s.rng = noise.NewSource(seed) }
}

// Simulator runs the pipeline.
type Simulator struct {
	log        *zap.Logger
	maxSamples int
	policy     snr.Policy
	rng        *rand.Rand
}

// New creates a Simulator. Without WithRand or WithSeed the random source is
// seeded from the runtime's entropy.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		log:        zap.NewNop(),
		maxSamples: core.DefaultMaxSamples,
		policy:     snr.PolicyInf,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Run executes one simulation. ctx is checked between stages; a cancelled
// run returns ctx.Err() wrapped with the stage it stopped before.
func (s *Simulator) Run(ctx context.Context, p Params) (Result, error) {
	start := time.Now()
	id := uuid.New()
	log := s.log.With(zap.String("run_id", id.String()))

	if err := p.Validate(s.maxSamples); err != nil {
		log.Debug("rejected parameters", zap.Error(err))
		return Result{}, err
	}

	res := Result{ID: id}
	var err error

	if err = checkpoint(ctx, stageSynthesize); err != nil {
		return Result{}, err
	}
	res.Original, err = signal.SynthesizeBounded(p.Time, p.Components, s.maxSamples)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", stageSynthesize, err)
	}
	res.Time = p.Time.Times()
	log.Debug("synthesized",
		zap.Int("samples", len(res.Original)),
		zap.Int("components", p.Components.Len()))

	if err = checkpoint(ctx, stageNoise); err != nil {
		return Result{}, err
	}
	res.Noisy, err = noise.Inject(res.Original, p.Noise, s.rng)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", stageNoise, err)
	}
	log.Debug("noise injected",
		zap.Stringer("kind", p.Noise.Kind),
		zap.Float64("intensity", p.Noise.Intensity))

	if err = checkpoint(ctx, stageFilter); err != nil {
		return Result{}, err
	}
	res.Filtered, err = zerophase.Apply(p.Filter, res.Noisy)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", stageFilter, err)
	}
	log.Debug("filtered", zap.Stringer("filter", p.Filter))

	if err = checkpoint(ctx, stageEvaluate); err != nil {
		return Result{}, err
	}
	if res.NoisySNR, err = snr.DB(res.Original, res.Noisy, snr.WithPolicy(s.policy)); err != nil {
		return Result{}, fmt.Errorf("%s: noisy: %w", stageEvaluate, err)
	}
	if res.FilteredSNR, err = snr.DB(res.Original, res.Filtered, snr.WithPolicy(s.policy)); err != nil {
		return Result{}, fmt.Errorf("%s: filtered: %w", stageEvaluate, err)
	}

	log.Info("simulation complete",
		zap.Int("samples", len(res.Original)),
		zap.Float64("noisy_snr_db", res.NoisySNR),
		zap.Float64("filtered_snr_db", res.FilteredSNR),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}

func checkpoint(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	return nil
}

// Simulate resolves req and runs it once with rng. A nil rng selects an
// entropy-seeded source.
func Simulate(ctx context.Context, req Request, rng *rand.Rand) (Result, error) {
	p, err := req.Params()
	if err != nil {
		return Result{}, err
	}
	return New(WithRand(rng)).Run(ctx, p)
}
