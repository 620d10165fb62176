package zerophase

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/dsp/filter/fir"
)

// gain is a memoryless Processor that records how it was primed.
type gain struct {
	g      float64
	primed []float64
}

func (p *gain) ProcessBlock(buf []float64) {
	for i := range buf {
		buf[i] *= p.g
	}
}

func (p *gain) SetSteadyState(x0 float64) { p.primed = append(p.primed, x0) }

func TestOddExtend(t *testing.T) {
	x := []float64{1, 2, 4, 7}
	got := oddExtend(x, 2)
	want := []float64{2 - 4, 2 - 2, 1, 2, 4, 7, 14 - 4, 14 - 2}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ext[%d] = %v, want %v (%v)", i, got[i], want[i], got)
		}
	}

	if got := oddExtend(x, 0); len(got) != 4 {
		t.Fatalf("zero pad: len = %d", len(got))
	}
}

func TestFiltFilt_SquaresGainAndPrimesEachPass(t *testing.T) {
	x := []float64{1, -2, 3, 0.5, 4}
	p := &gain{g: 0.5}
	y, err := FiltFilt(p, x, 3)
	if err != nil {
		t.Fatalf("FiltFilt: %v", err)
	}
	if len(y) != len(x) {
		t.Fatalf("len = %d, want %d", len(y), len(x))
	}
	for i := range x {
		if math.Abs(y[i]-0.25*x[i]) > 1e-15 {
			t.Fatalf("y[%d] = %v, want %v", i, y[i], 0.25*x[i])
		}
	}
	if len(p.primed) != 2 {
		t.Fatalf("primed %d times, want 2", len(p.primed))
	}
	// Forward pass starts at 2*x[0]-x[3]; backward pass at the scaled far end 0.5*(2*x[4]-x[1]).
	if p.primed[0] != 2*1-0.5 || p.primed[1] != 0.5*(2*4-(-2)) {
		t.Fatalf("primed with %v", p.primed)
	}
}

func TestFiltFilt_ClampsPadLength(t *testing.T) {
	x := []float64{3, 1, 2}
	y, err := FiltFilt(&gain{g: 1}, x, 100)
	if err != nil {
		t.Fatalf("FiltFilt: %v", err)
	}
	for i := range x {
		if y[i] != x[i] {
			t.Fatalf("y = %v, want %v", y, x)
		}
	}

	one, err := FiltFilt(&gain{g: 2}, []float64{1.5}, 9)
	if err != nil {
		t.Fatalf("single sample: %v", err)
	}
	if len(one) != 1 || one[0] != 6 {
		t.Fatalf("single sample: %v", one)
	}
}

func TestFiltFilt_DoesNotModifyInput(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	orig := append([]float64(nil), x...)
	if _, err := FiltFilt(fir.New([]float64{0.25, 0.5, 0.25}), x, 4); err != nil {
		t.Fatalf("FiltFilt: %v", err)
	}
	for i := range x {
		if x[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}

func TestFiltFilt_Errors(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
		pad  int
	}{
		{"empty", nil, 3},
		{"negative pad", []float64{1, 2}, -1},
		{"NaN", []float64{1, math.NaN(), 2}, 1},
		{"Inf", []float64{math.Inf(-1)}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FiltFilt(&gain{g: 1}, tc.x, tc.pad); !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func firRuntime(taps []float64) Processor { return fir.New(taps) }
