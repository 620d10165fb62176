// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections are
// cascaded via [Chain] for higher-order filters (Butterworth, Bessel).
//
// Sections can be primed to the steady state of a constant input, which is
// what forward-backward filtering needs to avoid start-up transients, and a
// cascade can be expanded into a single transfer-function pair with
// [TransferFunction].
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
