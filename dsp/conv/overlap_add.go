package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// minBlock is the smallest automatic segment length.
const minBlock = 256

// OverlapAdd holds the spectrum of a fixed kernel and convolves inputs
// with it segment by segment. Process reuses internal scratch, so one
// OverlapAdd must not be shared between goroutines.
type OverlapAdd struct {
	plan  *algofft.Plan[complex128]
	h     []complex128 // kernel spectrum
	m     int          // kernel length
	block int
	seg   []complex128
}

// NewOverlapAdd prepares a convolver for kernel. A blockSize <= 0 picks
// the larger of minBlock and the kernel length rounded up to a power of two.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize <= 0 {
		blockSize = max(minBlock, nextPowerOf2(len(kernel)))
	}
	n := nextPowerOf2(blockSize + len(kernel) - 1)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("conv: fft plan of size %d: %w", n, err)
	}

	h := make([]complex128, n)
	for i, v := range kernel {
		h[i] = complex(v, 0)
	}
	if err := plan.Forward(h, h); err != nil {
		return nil, fmt.Errorf("conv: kernel spectrum: %w", err)
	}

	return &OverlapAdd{
		plan:  plan,
		h:     h,
		m:     len(kernel),
		block: blockSize,
		seg:   make([]complex128, n),
	}, nil
}

// BlockSize returns the input segment length.
func (oa *OverlapAdd) BlockSize() int { return oa.block }

// FFTSize returns the transform length.
func (oa *OverlapAdd) FFTSize() int { return len(oa.h) }

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int { return oa.m }

// Process returns the full linear convolution of x with the kernel, of
// length len(x)+KernelLen()-1.
func (oa *OverlapAdd) Process(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	y := make([]float64, len(x)+oa.m-1)

	for off := 0; off < len(x); off += oa.block {
		in := x[off:min(off+oa.block, len(x))]
		if err := oa.segment(in); err != nil {
			return nil, err
		}
		// The segment's contribution spans len(in)+m-1 samples.
		tail := y[off:min(off+len(in)+oa.m-1, len(y))]
		for i := range tail {
			tail[i] += real(oa.seg[i])
		}
	}
	return y, nil
}

// segment leaves in*kernel in oa.seg.
func (oa *OverlapAdd) segment(in []float64) error {
	clear(oa.seg)
	for i, v := range in {
		oa.seg[i] = complex(v, 0)
	}
	if err := oa.plan.Forward(oa.seg, oa.seg); err != nil {
		return fmt.Errorf("conv: forward fft: %w", err)
	}
	for k, hk := range oa.h {
		oa.seg[k] *= hk
	}
	if err := oa.plan.Inverse(oa.seg, oa.seg); err != nil {
		return fmt.Errorf("conv: inverse fft: %w", err)
	}
	return nil
}
