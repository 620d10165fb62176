// Package pass designs lowpass and highpass IIR filters as cascades of
// second-order sections.
//
// Every designer takes the cutoff in Hz and the sample rate in Hz and
// returns one [biquad.Coefficients] per section; odd orders end with a
// first-order section (B2 = A2 = 0). Designers return nil for parameters
// they cannot realize: non-positive order, cutoff outside (0, Nyquist),
// or an order beyond the family's table.
//
// Analog prototypes are mapped with the bilinear transform, prewarped at
// the cutoff, so the digital -3 dB point lands exactly on freq.
package pass
