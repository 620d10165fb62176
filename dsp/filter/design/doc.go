// Package design turns a filter description into concrete coefficients.
//
// A [Spec] names a family (butterworth, bessel, firwin), a pass band
// (lowpass, highpass), an order and a cutoff normalized to Nyquist.
// [Spec.Design] dispatches to the IIR cascade designers in design/pass or to
// the windowed-sinc designer in dsp/filter/fir and returns a [Filter] that
// carries both the runtime form (sections or taps) and the expanded transfer
// function (B, A).
package design
