package pass

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/signalnoise/dsp/filter/biquad"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// cascadeMagDB is the cascade magnitude at freq Hz for sample rate sr.
func cascadeMagDB(sections []biquad.Coefficients, freq, sr float64) float64 {
	return biquad.NewChain(sections).MagnitudeDB(freq / (sr / 2))
}

func cascadePhase(sections []biquad.Coefficients, freq, sr float64) float64 {
	return cmplx.Phase(biquad.NewChain(sections).Response(freq / (sr / 2)))
}

func assertFiniteCoefficients(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	v := []float64{c.B0, c.B1, c.B2, c.A1, c.A2}
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			t.Fatalf("invalid coefficient[%d]=%v", i, v[i])
		}
	}
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	for _, p := range c.Poles() {
		if cmplx.Abs(p) >= 1+tol {
			t.Fatalf("unstable pole |p|=%v coeff=%#v", cmplx.Abs(p), c)
		}
	}
}
