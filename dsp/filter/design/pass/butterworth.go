package pass

import (
	"math"

	"github.com/cwbudde/signalnoise/dsp/filter/biquad"
)

// butterworthPoles returns the prototype poles of an order-n Butterworth
// filter, evenly spaced on the unit circle. Pairs come in ascending Q; the
// real pole of an odd order is last.
func butterworthPoles(n int) []pole {
	poles := make([]pole, 0, (n+1)/2)
	for i := n/2 - 1; i >= 0; i-- {
		theta := math.Pi * float64(2*i+1) / float64(2*n)
		poles = append(poles, pole{sigma: math.Sin(theta), omega: math.Cos(theta)})
	}
	if n%2 == 1 {
		poles = append(poles, pole{sigma: 1})
	}
	return poles
}

// ButterworthLP designs an order-n lowpass Butterworth cascade with its
// -3 dB point at freq.
func ButterworthLP(freq float64, n int, sampleRate float64) []biquad.Coefficients {
	k, ok := prewarp(freq, sampleRate)
	if n <= 0 || !ok {
		return nil
	}
	return digitize(butterworthPoles(n), k, false)
}

// ButterworthHP designs an order-n highpass Butterworth cascade with its
// -3 dB point at freq.
func ButterworthHP(freq float64, n int, sampleRate float64) []biquad.Coefficients {
	k, ok := prewarp(freq, sampleRate)
	if n <= 0 || !ok {
		return nil
	}
	return digitize(butterworthPoles(n), k, true)
}
