// Package fir provides a direct-form FIR filter runtime and windowed-sinc
// coefficient design.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. It is suitable for short kernels; long
// kernels are cheaper through FFT convolution in dsp/conv.
//
// [Lowpass] and [Highpass] design linear-phase kernels by the window method.
// Cutoffs are normalized to the Nyquist frequency, so 1.0 is half the sample
// rate.
package fir
