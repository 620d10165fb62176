// Package conv provides linear convolution.
//
// Two strategies are offered:
//
//   - [Direct]: O(N*M) time-domain convolution, best for short kernels.
//   - [OverlapAdd]: FFT block convolution, efficient for long kernels.
//
// [Convolve] picks between them by kernel length. For repeated convolution
// with the same kernel, create an [OverlapAdd] once and call Process.
package conv
