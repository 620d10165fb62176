// Package frequency computes frequency-domain statistics of sample vectors.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats holds frequency-domain statistics computed from a one-sided
// magnitude spectrum.
type Stats struct {
	BinCount int
	Peak     float64 // largest magnitude
	PeakBin  int
	PeakFreq float64 // Hz
	Energy   float64 // sum of squared magnitudes
	// Spectral shape descriptors
	Centroid  float64 // Hz
	Spread    float64 // Hz, standard deviation around the centroid
	Flatness  float64 // Wiener entropy, 0..1
	Rolloff   float64 // Hz below which 85% of the energy lies
	Bandwidth float64 // Hz, 3 dB width around the peak
}

// RolloffFraction is the energy fraction used by Calculate for Rolloff.
const RolloffFraction = 0.85

// binFreq returns the frequency in Hz of bin i of a one-sided spectrum with
// binCount bins (fftSize = 2*(binCount-1)).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Calculate computes all statistics from a magnitude spectrum (linear scale,
// bins 0 (DC) to Nyquist). Spectra with fewer than two bins only fill
// BinCount, Peak and Energy.
func Calculate(magnitude []float64, sampleRate float64) Stats {
	n := len(magnitude)
	if n == 0 {
		return Stats{}
	}

	var s Stats
	s.BinCount = n
	s.PeakBin = floats.MaxIdx(magnitude)
	s.Peak = magnitude[s.PeakBin]
	s.Energy = floats.Dot(magnitude, magnitude)
	if n < 2 {
		return s
	}

	sum := floats.Sum(magnitude)
	s.PeakFreq = binFreq(s.PeakBin, sampleRate, n)
	s.Centroid = centroid(magnitude, sampleRate, sum)
	s.Spread = spread(magnitude, sampleRate, s.Centroid, sum)
	s.Flatness = Flatness(magnitude)
	s.Rolloff = rolloff(magnitude, sampleRate, RolloffFraction, s.Energy)
	s.Bandwidth = Bandwidth(magnitude, sampleRate)
	return s
}

func centroid(magnitude []float64, sampleRate, sumMag float64) float64 {
	n := len(magnitude)
	if sumMag == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range magnitude {
		weighted += binFreq(i, sampleRate, n) * v
	}
	return weighted / sumMag
}

func spread(magnitude []float64, sampleRate, cent, sumMag float64) float64 {
	n := len(magnitude)
	if sumMag == 0 {
		return 0
	}
	weighted := 0.0
	for i, v := range magnitude {
		d := binFreq(i, sampleRate, n) - cent
		weighted += d * d * v
	}
	return math.Sqrt(weighted / sumMag)
}

// Flatness returns the spectral flatness, the ratio of geometric to
// arithmetic mean of the magnitudes. The DC bin is excluded. A spectrum
// with any zero bin has flatness 0.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}
	bins := magnitude[1:]
	mean := floats.Sum(bins) / float64(len(bins))
	if mean == 0 {
		return 0
	}

	sumLog := 0.0
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
		sumLog += math.Log(v)
	}
	return math.Exp(sumLog/float64(len(bins))) / mean
}

func rolloff(magnitude []float64, sampleRate, fraction, totalEnergy float64) float64 {
	n := len(magnitude)
	if totalEnergy == 0 {
		return 0
	}
	threshold := fraction * totalEnergy
	cum := 0.0
	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return binFreq(i, sampleRate, n)
		}
	}
	return binFreq(n-1, sampleRate, n)
}

// Bandwidth returns the 3 dB bandwidth around the spectral peak in Hz, with
// the crossing points linearly interpolated between bins.
func Bandwidth(magnitude []float64, sampleRate float64) float64 {
	n := len(magnitude)
	if n < 2 {
		return 0
	}
	peakBin := floats.MaxIdx(magnitude)
	peak := magnitude[peakBin]
	if peak == 0 {
		return 0
	}
	threshold := peak / math.Sqrt2

	lower := binFreq(0, sampleRate, n)
	for i := peakBin; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lower = interpFreq(i-1, i, magnitude[i-1], magnitude[i], threshold, sampleRate, n)
			break
		}
	}

	upper := binFreq(n-1, sampleRate, n)
	for i := peakBin; i < n-1; i++ {
		if magnitude[i+1] <= threshold && magnitude[i] > threshold {
			upper = interpFreq(i, i+1, magnitude[i], magnitude[i+1], threshold, sampleRate, n)
			break
		}
	}

	return math.Max(upper-lower, 0)
}

func interpFreq(binLow, binHigh int, magLow, magHigh, threshold, sampleRate float64, binCount int) float64 {
	fLow := binFreq(binLow, sampleRate, binCount)
	fHigh := binFreq(binHigh, sampleRate, binCount)
	denom := magHigh - magLow
	if denom == 0 {
		return (fLow + fHigh) / 2
	}
	return fLow + (threshold-magLow)/denom*(fHigh-fLow)
}
