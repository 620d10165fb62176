package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// TimeBase is a uniform sampling grid over the half-open interval
// [0, Duration) with step 1/SampleRate.
type TimeBase struct {
	Duration   float64 // seconds
	SampleRate float64 // Hz
}

// Len returns the number of samples, round(SampleRate × Duration).
func (tb TimeBase) Len() int {
	return int(math.Round(tb.SampleRate * tb.Duration))
}

// Step returns the sample spacing in seconds.
func (tb TimeBase) Step() float64 {
	return 1 / tb.SampleRate
}

// Validate checks the grid against maxSamples. A maxSamples <= 0 selects
// core.DefaultMaxSamples.
func (tb TimeBase) Validate(maxSamples int) error {
	if maxSamples <= 0 {
		maxSamples = core.DefaultMaxSamples
	}
	if !core.IsFinite(tb.Duration) || tb.Duration <= 0 {
		return fmt.Errorf("%w: duration must be > 0: %v", core.ErrInvalidInput, tb.Duration)
	}
	if !core.IsFinite(tb.SampleRate) || tb.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %v", core.ErrInvalidInput, tb.SampleRate)
	}

	// Bound the product before rounding it to an int.
	if product := tb.SampleRate * tb.Duration; !(product < float64(maxSamples)+1) {
		return fmt.Errorf("%w: %.0f samples exceeds limit %d", core.ErrInvalidInput, product, maxSamples)
	}
	n := tb.Len()
	if n > maxSamples {
		return fmt.Errorf("%w: %d samples exceeds limit %d", core.ErrInvalidInput, n, maxSamples)
	}
	if n < 1 {
		return fmt.Errorf("%w: time base yields %d samples", core.ErrInvalidInput, n)
	}
	return nil
}

// Times returns the Len() sample instants i/SampleRate.
func (tb TimeBase) Times() []float64 {
	n := tb.Len()
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / tb.SampleRate
	}
	return out
}
