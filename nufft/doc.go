// Package nufft provides a type-1 non-uniform fast Fourier transform.
//
// Given N samples at arbitrary real positions with complex weights, the
// package approximates the Fourier sum at M uniformly spaced output
// frequencies in close to O(N log N) time, matching the O(N*M) direct sum to
// within a caller-specified accuracy target.
//
// # Usage
//
// For a one-shot transform with defaults (eps = 1e-15, positive exponent):
//
//	result, err := nufft.Transform(x, c, m, nufft.DefaultOptions())
//
// The output frequencies are those of [Frequencies]:
//
//	freqs := nufft.Frequencies(m, 1.0)  // df*(k - floor(m/2)), k = 0..m-1
//
// [Direct] computes the same sum exactly by direct summation and serves as a
// correctness reference in tests and diagnostics.
//
// # Algorithm
//
// The transform follows Dutt-Rokhlin Gaussian gridding. An accuracy-driven
// solver derives the kernel half-width, the oversampled grid length, and the
// kernel width parameter from (M, eps). Each sample's weight is spread onto
// the periodic oversampled grid through a truncated Gaussian; a single FFT of
// the grid (delegated to algo-fft) produces the oversampled spectrum; the M
// central bins are then rescaled by the analytic Fourier transform of the
// kernel, undoing its smoothing via the convolution theorem.
//
// The spreading step dominates the cost. The default SpreadGaussianFast
// method factors the kernel so only O(N + Msp) exponentials are evaluated in
// total; SpreadGaussianNaive evaluates all O(N*Msp) of them directly and is
// kept as an algebraically equivalent cross-check. Options.Workers > 1
// partitions samples across per-worker scratch grids merged by addition,
// which shifts results within floating-point rounding only.
//
// # Accuracy
//
// Options.Eps must lie strictly inside (1e-33, 1e-1). The derived parameters
// bound the output error relative to the direct sum by the requested eps;
// targets at or below 1e-11 switch from 2x to 3x grid oversampling. For very
// small outputs the grid length is floored at twice the kernel half-width and
// padded for the FFT backend; the kernel width follows the realized
// oversampling in all cases, which is what keeps the bound from degrading
// when the grid is wider than the nominal ratio demands.
//
// # Errors
//
// All failures are reported before or at the failing stage and are never
// transient: ErrInvalidEps, ErrInvalidSize, ErrLengthMismatch and
// ErrEmptyInput reject invalid calls, and ErrFFTUnavailable surfaces a
// missing FFT backend. There are no retries.
package nufft
