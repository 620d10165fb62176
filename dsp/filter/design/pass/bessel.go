package pass

import "github.com/cwbudde/signalnoise/dsp/filter/biquad"

// MaxBesselOrder is the highest order in the Bessel pole table.
const MaxBesselOrder = 10

// besselPoles holds the Bessel (Thomson) prototype poles, scaled so the
// magnitude is -3 dB at 1 rad/s. One entry per conjugate pair, real pole
// last for odd orders.
//
// Derived from C.R. Bond, "Bessel Filter Constants" (delay-normalized poles
// divided by the -3 dB frequency of each order).
var besselPoles = [MaxBesselOrder + 1][]pole{
	1:  {{1.0000000000, 0}},
	2:  {{1.1016013306, 0.6360098248}},
	3:  {{1.0474091610, 0.9992644363}, {1.3226757999, 0}},
	4:  {{0.9952087644, 1.2571057395}, {1.3700678305, 0.4102497175}},
	5:  {{0.9576765486, 1.4711243207}, {1.3808773259, 0.7179095876}, {1.5023162714, 0}},
	6:  {{0.9306565229, 1.6618632690}, {1.3818580976, 0.9714718907}, {1.5714904036, 0.3208963742}},
	7:  {{0.9098677806, 1.8364513530}, {1.3789032168, 1.1915667778}, {1.6120387662, 0.5892445070}, {1.6843681793, 0}},
	8:  {{0.8928697090, 1.9983258274}, {1.3738412332, 1.3883565759}, {1.6369394181, 0.8227956255}, {1.7574083875, 0.2728675751}},
	9:  {{0.8783992762, 2.1498009572}, {1.3675883051, 1.5677337122}, {1.6523964846, 1.0313850453}, {1.8071705349, 0.5123837306}, {1.8565971990, 0}},
	10: {{0.8657504750, 2.2925403399}, {1.3606922855, 1.7335057427}, {1.6618102359, 1.2211002195}, {1.8421962445, 0.7272575978}, {1.9276196912, 0.2416218791}},
}

// BesselLP designs an order-n lowpass Bessel cascade, -3 dB at freq. Bessel
// filters trade rolloff for a maximally flat group delay.
func BesselLP(freq float64, n int, sampleRate float64) []biquad.Coefficients {
	k, ok := prewarp(freq, sampleRate)
	if n <= 0 || n > MaxBesselOrder || !ok {
		return nil
	}
	return digitize(besselPoles[n], k, false)
}

// BesselHP designs an order-n highpass Bessel cascade, -3 dB at freq.
func BesselHP(freq float64, n int, sampleRate float64) []biquad.Coefficients {
	k, ok := prewarp(freq, sampleRate)
	if n <= 0 || n > MaxBesselOrder || !ok {
		return nil
	}
	return digitize(besselPoles[n], k, true)
}
