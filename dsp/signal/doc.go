// Package signal synthesizes deterministic sampled waveforms.
//
// A [TimeBase] describes the sampling grid (duration and sample rate) and a
// [ComponentSet] describes a superposition of sinusoids. [Synthesize]
// evaluates the components on the grid:
//
//	s[i] = Σ_k A_k · sin(2π f_k t[i] + φ_k)
//
// Everything in this package is pure: no randomness, no shared state.
package signal
