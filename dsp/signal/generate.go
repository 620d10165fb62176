package signal

import (
	"math"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// Generator creates deterministic signals at a configured sample rate.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates amplitude·sin(2π·freqHz·t + phase).
func (g *Generator) Sine(freqHz, amplitude, phase float64, samples int) ([]float64, error) {
	if err := g.cfg.CheckLength(samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	g.accumulate(out, freqHz, amplitude, phase)
	return out, nil
}

// Multisine sums every component of cs over the given number of samples.
func (g *Generator) Multisine(cs ComponentSet, samples int) ([]float64, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	if err := g.cfg.CheckLength(samples); err != nil {
		return nil, err
	}

	out := make([]float64, samples)
	for k := range cs.Frequencies {
		g.accumulate(out, cs.Frequencies[k], cs.Amplitudes[k], cs.Phases[k])
	}
	return out, nil
}

// accumulate adds one sinusoid to out. The argument is computed from the
// sample index rather than by phase increment so that long vectors do not
// accumulate rounding drift.
func (g *Generator) accumulate(out []float64, freqHz, amplitude, phase float64) {
	if amplitude == 0 {
		return
	}
	w := 2 * math.Pi * freqHz
	for i := range out {
		t := float64(i) / g.cfg.SampleRate
		out[i] += amplitude * math.Sin(w*t+phase)
	}
}

// Synthesize evaluates cs on the grid described by tb.
func Synthesize(tb TimeBase, cs ComponentSet) ([]float64, error) {
	return SynthesizeBounded(tb, cs, core.DefaultMaxSamples)
}

// SynthesizeBounded is Synthesize with an explicit sample limit.
func SynthesizeBounded(tb TimeBase, cs ComponentSet, maxSamples int) ([]float64, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	if err := tb.Validate(maxSamples); err != nil {
		return nil, err
	}

	g := NewGenerator(core.WithSampleRate(tb.SampleRate), core.WithMaxSamples(maxSamples))
	return g.Multisine(cs, tb.Len())
}

// Cosine evaluates amplitude·cos(2π·freqHz·t) on tb.
func Cosine(tb TimeBase, freqHz, amplitude float64) ([]float64, error) {
	if err := tb.Validate(0); err != nil {
		return nil, err
	}
	g := NewGenerator(core.WithSampleRate(tb.SampleRate))
	return g.Sine(freqHz, amplitude, math.Pi/2, tb.Len())
}
