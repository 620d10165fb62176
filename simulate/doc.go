// Package simulate runs the full pipeline: synthesize a multisine, corrupt
// it with noise, recover it with a zero-phase filter and score both the
// noisy and the filtered vector against the original by SNR.
//
// A [Simulator] carries the random source, the logger and the limits. Runs
// share no state apart from the random source, so a Simulator must not be
// used from several goroutines at once.
package simulate
