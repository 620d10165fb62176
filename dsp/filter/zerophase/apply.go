package zerophase

import (
	"fmt"

	"github.com/cwbudde/signalnoise/dsp/conv"
	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/dsp/filter/design"
	"github.com/cwbudde/signalnoise/dsp/filter/fir"
)

// Apply designs spec and filters x with zero phase.
func Apply(spec design.Spec, x []float64) ([]float64, error) {
	f, err := spec.Design()
	if err != nil {
		return nil, err
	}
	return Filter(f, x)
}

// Filter runs a designed filter over x with zero phase. Cascades run through
// a biquad chain. FIR kernels shorter than conv.DirectThreshold run through
// the streaming fir runtime; longer ones through FFT overlap-add.
func Filter(f *design.Filter, x []float64) ([]float64, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil filter", core.ErrInvalidInput)
	}

	var p Processor
	switch {
	case !f.IsFIR():
		p = f.Chain()
	case len(f.Taps) < conv.DirectThreshold:
		p = fir.New(f.Taps)
	default:
		bf, err := newBlockFIR(f.Taps)
		if err != nil {
			return nil, err
		}
		p = bf
	}

	y, err := FiltFilt(p, x, PadLen(f))
	if err != nil {
		return nil, err
	}
	if bf, ok := p.(*blockFIR); ok && bf.err != nil {
		return nil, bf.err
	}
	return y, nil
}

// PadLen returns the extension used on each side: three times the length of
// the longer of B and A.
func PadLen(f *design.Filter) int {
	return 3 * max(len(f.B), len(f.A))
}

// blockFIR is an FFT-backed FIR runtime. Each block is filtered as if the
// steady-state level had been applied for the kernel length beforehand.
type blockFIR struct {
	oa  *conv.OverlapAdd
	x0  float64
	err error
}

func newBlockFIR(taps []float64) (*blockFIR, error) {
	oa, err := conv.NewOverlapAdd(taps, 0)
	if err != nil {
		return nil, err
	}
	return &blockFIR{oa: oa}, nil
}

func (b *blockFIR) SetSteadyState(x0 float64) { b.x0 = x0 }

func (b *blockFIR) ProcessBlock(buf []float64) {
	if len(buf) == 0 || b.err != nil {
		return
	}

	hist := b.oa.KernelLen() - 1
	in := make([]float64, hist+len(buf))
	for i := range hist {
		in[i] = b.x0
	}
	copy(in[hist:], buf)

	out, err := b.oa.Process(in)
	if err != nil {
		b.err = err
		return
	}
	copy(buf, out[hist:hist+len(buf)])
}
