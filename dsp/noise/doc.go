// Package noise adds stochastic perturbations to sample vectors.
//
// Three models are supported, each parameterized by a single intensity:
//
//   - [Gaussian]: i.i.d. normal draws with mean 0 and standard deviation = intensity.
//   - [Impulse]: i.i.d. 0/1 draws where 1 occurs with probability = intensity
//     (clamped to [0,1]). The impulse is additive and not amplitude scaled.
//   - [Random]: i.i.d. uniform draws on [0,1) scaled by intensity.
//
// The random source is always explicit. An [Injector] owns a *rand.Rand;
// a fixed seed reproduces the exact output.
package noise
