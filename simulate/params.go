package simulate

import (
	"fmt"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/dsp/filter/design"
	"github.com/cwbudde/signalnoise/dsp/noise"
	"github.com/cwbudde/signalnoise/dsp/signal"
	"github.com/cwbudde/signalnoise/dsp/window"
)

// Params is a fully typed pipeline configuration.
type Params struct {
	Time       signal.TimeBase
	Components signal.ComponentSet
	Noise      noise.Spec
	Filter     design.Spec
}

// Validate checks every stage's parameters. Errors carry the stage name and
// wrap the core sentinel.
func (p Params) Validate(maxSamples int) error {
	if err := p.Components.Validate(); err != nil {
		return fmt.Errorf("%s: %w", stageSynthesize, err)
	}
	if err := p.Time.Validate(maxSamples); err != nil {
		return fmt.Errorf("%s: %w", stageSynthesize, err)
	}
	if err := p.Noise.Validate(); err != nil {
		return fmt.Errorf("%s: %w", stageNoise, err)
	}
	if err := p.Filter.Validate(); err != nil {
		return fmt.Errorf("%s: %w", stageFilter, err)
	}
	// An order-n design holds n+1 coefficients; none may outgrow the signal.
	if n := p.Time.Len(); p.Filter.Order >= n {
		return fmt.Errorf("%s: %w: order %d needs more than the %d samples of the signal",
			stageFilter, core.ErrInvalidInput, p.Filter.Order, n)
	}
	return nil
}

// Request is the tag-based form of Params, as supplied by a user interface.
type Request struct {
	Duration     float64 // seconds
	SamplingRate float64 // Hz
	Frequencies  []float64
	Amplitudes   []float64
	Phases       []float64 // radians

	NoiseType      string // gaussian, impulse or random
	NoiseIntensity float64

	FilterType   string // butterworth, bessel or firwin
	FilterPass   string // lowpass or highpass
	FilterOrder  int
	FilterCutoff float64 // normalized to Nyquist
	FilterWindow string  // firwin taper; empty selects hamming
}

// DefaultRequest returns the parameter set the interactive tool starts with.
func DefaultRequest() Request {
	return Request{
		Duration:       10,
		SamplingRate:   core.DefaultSampleRate,
		Frequencies:    []float64{2, 5, 10},
		Amplitudes:     []float64{1, 0.5, 0.2},
		Phases:         []float64{0, 1.5708, 3.1416},
		NoiseType:      noise.Gaussian.String(),
		NoiseIntensity: 0.2,
		FilterType:     design.Butterworth.String(),
		FilterPass:     design.Lowpass.String(),
		FilterOrder:    4,
		FilterCutoff:   0.1,
	}
}

// Params resolves the tags into closed enums. Only the tags are checked
// here; numeric ranges are checked by Params.Validate.
func (r Request) Params() (Params, error) {
	kind, err := noise.ParseKind(r.NoiseType)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", stageNoise, err)
	}
	family, err := design.ParseFamily(r.FilterType)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", stageFilter, err)
	}
	pass, err := design.ParsePass(r.FilterPass)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", stageFilter, err)
	}
	var win window.Type
	if r.FilterWindow != "" {
		if win, err = window.ParseType(r.FilterWindow); err != nil {
			return Params{}, fmt.Errorf("%s: %w: %w", stageFilter, core.ErrInvalidFilterType, err)
		}
	}

	return Params{
		Time: signal.TimeBase{Duration: r.Duration, SampleRate: r.SamplingRate},
		Components: signal.ComponentSet{
			Frequencies: r.Frequencies,
			Amplitudes:  r.Amplitudes,
			Phases:      r.Phases,
		},
		Noise: noise.Spec{Kind: kind, Intensity: r.NoiseIntensity},
		Filter: design.Spec{
			Family: family,
			Pass:   pass,
			Order:  r.FilterOrder,
			Cutoff: r.FilterCutoff,
			Window: win,
		},
	}, nil
}
