// Package zerophase applies a filter forward and then backward so the
// result has no phase shift and a squared magnitude response.
//
// Both ends of the input are extended by odd reflection (2*x[0] - x[k]) so
// the filter starts in a state that matches the signal, and each pass
// primes the runtime with its steady state for the first extended sample.
// The extension is trimmed from the result, which always has the input
// length.
package zerophase
