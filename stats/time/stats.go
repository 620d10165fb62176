// Package time computes time-domain statistics of sample vectors.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/signalnoise/dsp/core"
)

// Stats summarizes one sample vector. Level fields in dB use the 20·log10
// amplitude convention and are -Inf for silence.
type Stats struct {
	Length        int
	Mean          float64
	Variance      float64 // population variance
	Kurtosis      float64 // excess kurtosis; NaN when Variance is 0
	Min, Max      float64
	Peak          float64 // largest |x|
	PeakdB        float64
	Power         float64 // mean square
	RMS           float64
	RMSdB         float64
	CrestFactor   float64 // Peak/RMS; 0 for silence
	CrestFactordB float64
	ZeroCrossings int
}

// Calculate fills every field of Stats for x.
func Calculate(x []float64) Stats {
	s := Stats{
		Length:        len(x),
		Kurtosis:      math.NaN(),
		PeakdB:        math.Inf(-1),
		RMSdB:         math.Inf(-1),
		CrestFactordB: math.Inf(-1),
	}
	if len(x) == 0 {
		return s
	}

	s.Mean, s.Variance = stat.PopMeanVariance(x, nil)
	if s.Variance > 0 {
		s.Kurtosis = stat.ExKurtosis(x, nil)
	}
	s.Min, s.Max = floats.Min(x), floats.Max(x)
	s.Peak = math.Max(-s.Min, s.Max)
	s.Power = Power(x)
	s.RMS = math.Sqrt(s.Power)
	s.ZeroCrossings = ZeroCrossings(x)

	s.PeakdB = core.LinearToDB(s.Peak)
	s.RMSdB = core.LinearToDB(s.RMS)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
		s.CrestFactordB = core.LinearToDB(s.CrestFactor)
	}
	return s
}

// Power returns the mean square of x, 0 when x is empty.
func Power(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Dot(x, x) / float64(len(x))
}

// RMS returns the root mean square of x.
func RMS(x []float64) float64 { return math.Sqrt(Power(x)) }

// Mean returns the DC offset of x, 0 when x is empty.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// Peak returns the largest absolute sample of x.
func Peak(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Max(-floats.Min(x), floats.Max(x))
}

// ZeroCrossings counts strict sign changes between neighbours. A zero
// sample neither starts nor ends a crossing.
func ZeroCrossings(x []float64) int {
	n := 0
	for i := 1; i < len(x); i++ {
		if (x[i-1] < 0 && x[i] > 0) || (x[i-1] > 0 && x[i] < 0) {
			n++
		}
	}
	return n
}
