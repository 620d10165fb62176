package pass

import (
	"math"

	"github.com/cwbudde/signalnoise/dsp/filter/biquad"
)

// pole is a left-half-plane pole -sigma ± j*omega of a lowpass prototype
// with its cutoff at 1 rad/s. omega == 0 marks the real pole of an odd
// order.
type pole struct {
	sigma, omega float64
}

// q returns the quality factor of the conjugate pair.
func (p pole) q() float64 {
	return math.Hypot(p.sigma, p.omega) / (2 * p.sigma)
}

// prewarp returns tan(pi*freq/sampleRate), the analog frequency the bilinear
// transform s = (z-1)/(z+1) maps onto freq. ok is false outside
// 0 < freq < sampleRate/2.
func prewarp(freq, sampleRate float64) (k float64, ok bool) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) || !(freq > 0) || freq >= sampleRate/2 {
		return 0, false
	}
	return math.Tan(math.Pi * freq / sampleRate), true
}

// digitize maps prototype poles to sections with the cutoff prewarped to k.
// Lowpass sections have unit DC gain, highpass sections unit Nyquist gain.
func digitize(poles []pole, k float64, highpass bool) []biquad.Coefficients {
	out := make([]biquad.Coefficients, 0, len(poles))
	for _, p := range poles {
		switch {
		case p.omega == 0 && highpass:
			out = append(out, firstOrderHP(p.sigma, k))
		case p.omega == 0:
			out = append(out, firstOrderLP(p.sigma, k))
		case highpass:
			out = append(out, secondOrderHP(p, k))
		default:
			out = append(out, secondOrderLP(p, k))
		}
	}
	return out
}

// secondOrderLP is the bilinear image of w²/(s² + 2·σk·s + w²), w² = |p|²k².
func secondOrderLP(p pole, k float64) biquad.Coefficients {
	s := p.sigma * k
	w2 := (p.sigma*p.sigma + p.omega*p.omega) * k * k
	a0 := 1 + 2*s + w2
	return biquad.Coefficients{
		B0: w2 / a0,
		B1: 2 * w2 / a0,
		B2: w2 / a0,
		A1: 2 * (w2 - 1) / a0,
		A2: (1 - 2*s + w2) / a0,
	}
}

// secondOrderHP applies s -> k/s to the prototype pair before the bilinear
// transform.
func secondOrderHP(p pole, k float64) biquad.Coefficients {
	m2 := p.sigma*p.sigma + p.omega*p.omega
	s := p.sigma * k
	k2 := k * k
	a0 := m2 + 2*s + k2
	return biquad.Coefficients{
		B0: m2 / a0,
		B1: -2 * m2 / a0,
		B2: m2 / a0,
		A1: 2 * (k2 - m2) / a0,
		A2: (m2 - 2*s + k2) / a0,
	}
}

func firstOrderLP(sigma, k float64) biquad.Coefficients {
	s := sigma * k
	return biquad.Coefficients{
		B0: s / (1 + s),
		B1: s / (1 + s),
		A1: (s - 1) / (1 + s),
	}
}

func firstOrderHP(sigma, k float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: sigma / (k + sigma),
		B1: -sigma / (k + sigma),
		A1: (k - sigma) / (k + sigma),
	}
}
