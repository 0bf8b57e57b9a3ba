package nufft

import "errors"

// Validation and pipeline errors.
var (
	// ErrInvalidEps is returned when the accuracy target lies outside the
	// supported open interval (1e-33, 1e-1).
	ErrInvalidEps = errors.New("nufft: eps must satisfy 1e-33 < eps < 1e-1")

	// ErrInvalidSize is returned when the requested output length is not positive.
	ErrInvalidSize = errors.New("nufft: output size must be positive")

	// ErrLengthMismatch is returned when positions and weights differ in length.
	ErrLengthMismatch = errors.New("nufft: positions and weights must have equal length")

	// ErrEmptyInput is returned for an empty sample set; the 1/N output
	// normalization is undefined for N = 0.
	ErrEmptyInput = errors.New("nufft: empty sample set")

	// ErrFFTUnavailable is returned when no FFT plan can be created for the
	// oversampled grid length. This is fatal; there is no fallback transform.
	ErrFFTUnavailable = errors.New("nufft: failed to create FFT plan")
)
