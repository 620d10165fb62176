package core

import "fmt"

// DefaultMaxSamples caps a single sample vector. The length is the product
// of two caller-supplied values, so it is bounded before anything is
// allocated.
const DefaultMaxSamples = 1_000_000

// DefaultSampleRate matches the interactive tool's default of 10 kHz.
const DefaultSampleRate = 10000

// ProcessorConfig holds the settings shared by sample-producing stages.
type ProcessorConfig struct {
	SampleRate float64
	MaxSamples int
}

// ProcessorOption mutates a ProcessorConfig. Options ignore out-of-range
// values and keep the previous setting.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns DefaultSampleRate and DefaultMaxSamples.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: DefaultSampleRate, MaxSamples: DefaultMaxSamples}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(hz float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if hz > 0 {
			cfg.SampleRate = hz
		}
	}
}

// WithMaxSamples sets the vector length limit.
func WithMaxSamples(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.MaxSamples = n
		}
	}
}

// ApplyProcessorOptions folds opts over DefaultProcessorConfig.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// CheckLength reports whether a vector of n samples may be produced under
// cfg.
func (cfg ProcessorConfig) CheckLength(n int) error {
	switch {
	case !(cfg.SampleRate > 0) || !IsFinite(cfg.SampleRate):
		return fmt.Errorf("%w: sample rate %v", ErrInvalidInput, cfg.SampleRate)
	case n <= 0:
		return fmt.Errorf("%w: sample count %d", ErrInvalidInput, n)
	case cfg.MaxSamples > 0 && n > cfg.MaxSamples:
		return fmt.Errorf("%w: %d samples exceeds limit %d", ErrInvalidInput, n, cfg.MaxSamples)
	}
	return nil
}
