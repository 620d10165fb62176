// Package testutil holds signal fixtures and tolerance assertions shared by
// the package tests.
package testutil

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// DeterministicSine returns n samples of amplitude·sin(2π·freqHz·i/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	return DeterministicSinePhase(freqHz, sampleRate, amplitude, 0, n)
}

// DeterministicSinePhase is DeterministicSine with a phase offset in radians.
func DeterministicSinePhase(freqHz, sampleRate, amplitude, phase float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// DeterministicNoise returns n uniform samples in [-amplitude, amplitude]
// drawn from a PCG source seeded with seed.
func DeterministicNoise(seed uint64, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, 0))
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}
	return out
}

// DC returns n copies of value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	floats.AddConst(value, out)
	return out
}

// Ones is DC(1, n).
func Ones(n int) []float64 { return DC(1, n) }

// Add returns a+b truncated to the shorter operand.
func Add(a, b []float64) []float64 {
	n := min(len(a), len(b))
	return floats.AddTo(make([]float64, n), a[:n], b[:n])
}

// ToneAmplitude projects x onto sine and cosine references at freqHz and
// returns the amplitude and phase of that component. The estimate is exact
// for a pure tone spanning whole periods.
func ToneAmplitude(x []float64, freqHz, sampleRate float64) (amplitude, phase float64) {
	n := len(x)
	s := floats.Dot(x, DeterministicSinePhase(freqHz, sampleRate, 1, 0, n))
	c := floats.Dot(x, DeterministicSinePhase(freqHz, sampleRate, 1, math.Pi/2, n))
	s, c = 2*s/float64(n), 2*c/float64(n)
	return math.Hypot(s, c), math.Atan2(c, s)
}
