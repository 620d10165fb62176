package zerophase

import (
	"fmt"
	"slices"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// Processor is a causal filter runtime that filters in place and can be
// primed for a constant input. *biquad.Chain and *fir.Filter satisfy it.
type Processor interface {
	ProcessBlock(buf []float64)
	SetSteadyState(x0 float64)
}

// FiltFilt filters x forward and backward through p and returns a new slice
// of len(x). padLen samples of odd reflection are added at each end; values
// of len(x) or more are clamped to len(x)-1.
func FiltFilt(p Processor, x []float64, padLen int) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%w: empty signal", core.ErrInvalidInput)
	}
	if padLen < 0 {
		return nil, fmt.Errorf("%w: negative pad length %d", core.ErrInvalidInput, padLen)
	}
	if ok, i := core.AllFinite(x); !ok {
		return nil, fmt.Errorf("%w: non-finite sample at index %d", core.ErrInvalidInput, i)
	}
	padLen = min(padLen, len(x)-1)

	ext := oddExtend(x, padLen)
	pass(p, ext)
	slices.Reverse(ext)
	pass(p, ext)
	slices.Reverse(ext)

	return ext[padLen : padLen+len(x) : padLen+len(x)], nil
}

func pass(p Processor, buf []float64) {
	p.SetSteadyState(buf[0])
	p.ProcessBlock(buf)
}

// oddExtend returns x with n samples of odd reflection about each end point.
func oddExtend(x []float64, n int) []float64 {
	last := len(x) - 1
	out := make([]float64, len(x)+2*n)
	for i := range n {
		out[i] = 2*x[0] - x[n-i]
		out[n+len(x)+i] = 2*x[last] - x[last-1-i]
	}
	copy(out[n:], x)
	return out
}
