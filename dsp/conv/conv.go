package conv

import (
	"fmt"
	"math/bits"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// Errors returned for empty operands. Both wrap core.ErrInvalidInput.
var (
	ErrEmptyInput  = fmt.Errorf("%w: conv: empty input", core.ErrInvalidInput)
	ErrEmptyKernel = fmt.Errorf("%w: conv: empty kernel", core.ErrInvalidInput)
)

// DirectThreshold is the shorter-operand length from which [Convolve] uses
// overlap-add instead of the time-domain sum.
const DirectThreshold = 64

func checkOperands(x, h []float64) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	if len(h) == 0 {
		return ErrEmptyKernel
	}
	return nil
}

// Direct returns the full linear convolution x*h, of length
// len(x)+len(h)-1, by scaled accumulation of h.
func Direct(x, h []float64) ([]float64, error) {
	if err := checkOperands(x, h); err != nil {
		return nil, err
	}
	y := make([]float64, len(x)+len(h)-1)
	for i, xi := range x {
		if xi != 0 {
			floats.AddScaled(y[i:i+len(h)], xi, h)
		}
	}
	return y, nil
}

// Convolve returns x*h. The operands commute; the shorter one is treated
// as the kernel.
func Convolve(x, h []float64) ([]float64, error) {
	if err := checkOperands(x, h); err != nil {
		return nil, err
	}
	if len(h) > len(x) {
		x, h = h, x
	}
	if len(h) < DirectThreshold {
		return Direct(x, h)
	}
	oa, err := NewOverlapAdd(h, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(x)
}

// nextPowerOf2 returns the smallest power of two >= n, and 1 for n <= 1.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
