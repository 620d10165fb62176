package signal

import (
	"fmt"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// ComponentSet holds one sinusoidal term per index: frequency in Hz,
// unitless amplitude and phase in radians. The three slices are parallel.
type ComponentSet struct {
	Frequencies []float64
	Amplitudes  []float64
	Phases      []float64
}

// Len returns the number of components.
func (cs ComponentSet) Len() int {
	return len(cs.Frequencies)
}

// Validate checks the length invariant and the value ranges.
func (cs ComponentSet) Validate() error {
	nf, na, np := len(cs.Frequencies), len(cs.Amplitudes), len(cs.Phases)
	if nf != na || nf != np {
		return fmt.Errorf("%w: component lengths differ: frequencies=%d amplitudes=%d phases=%d",
			core.ErrInvalidInput, nf, na, np)
	}
	for i := range cs.Frequencies {
		f := cs.Frequencies[i]
		if !core.IsFinite(f) || f < 0 {
			return fmt.Errorf("%w: frequency[%d] must be finite and >= 0: %v", core.ErrInvalidInput, i, f)
		}
		if !core.IsFinite(cs.Amplitudes[i]) {
			return fmt.Errorf("%w: amplitude[%d] is not finite", core.ErrInvalidInput, i)
		}
		if !core.IsFinite(cs.Phases[i]) {
			return fmt.Errorf("%w: phase[%d] is not finite", core.ErrInvalidInput, i)
		}
	}
	return nil
}
