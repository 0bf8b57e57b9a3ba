package nufft

import "fmt"

// Options configures a transform call.
//
// The zero value selects the defaults of [DefaultOptions]; individual fields
// left at zero are filled in the same way.
type Options struct {
	// Df is the spacing of the output frequencies. Defaults to 1.
	Df float64

	// Eps is the requested accuracy of the approximation, strictly inside
	// (1e-33, 1e-1). Defaults to 1e-15. Tighter targets widen the spreading
	// kernel and, below 1e-11, raise the grid oversampling from 2x to 3x.
	Eps float64

	// Iflag selects the sign of the exponent: negative requests
	// exp(-i*k*x), any other value exp(+i*k*x). Defaults to +1.
	Iflag int

	// Method selects the spreading implementation. Defaults to
	// SpreadGaussianFast; the naive variant exists for cross-checking.
	Method SpreadMethod

	// Workers sets the number of goroutines spreading samples onto the
	// grid. Values below 2 run sequentially. Parallel runs merge
	// per-worker scratch grids, so results can differ from a sequential
	// run within floating-point rounding only.
	Workers int
}

// DefaultOptions returns the default transform options.
func DefaultOptions() Options {
	return Options{
		Df:      1,
		Eps:     1e-15,
		Iflag:   1,
		Method:  SpreadGaussianFast,
		Workers: 1,
	}
}

func (o Options) withDefaults() Options {
	if o.Df == 0 {
		o.Df = 1
	}

	if o.Eps == 0 {
		o.Eps = 1e-15
	}

	if o.Iflag == 0 {
		o.Iflag = 1
	}

	if o.Workers <= 0 {
		o.Workers = 1
	}

	return o
}

// Frequencies returns the m output frequencies df*(k - floor(m/2)) for
// k = 0..m-1, the grid on which [Transform] and [Direct] evaluate. Returns
// nil for m <= 0.
func Frequencies(m int, df float64) []float64 {
	if m <= 0 {
		return nil
	}

	half := m / 2
	out := make([]float64, m)
	for k := range out {
		out[k] = df * float64(k-half)
	}

	return out
}

// Transform approximates the type-1 non-uniform discrete Fourier transform
//
//	F(k) = (1/N) * sum_j c[j] * exp(sign(iflag) * i * k * x[j] * df)
//
// at the m frequencies of [Frequencies](m, df), to within the accuracy target
// of opts.Eps, in close to O(N log N) time.
//
// Each sample's weight is spread onto an oversampled periodic grid through a
// truncated Gaussian kernel, the grid is transformed by a single FFT, and the
// central bins are rescaled by the kernel's analytic Fourier transform
// (Dutt-Rokhlin gridding). The call is stateless and deterministic for fixed
// inputs; every error reflects an invalid argument or a missing FFT backend,
// never a transient condition.
func Transform(x []float64, c []complex128, m int, opts Options) ([]complex128, error) {
	opts = opts.withDefaults()

	if err := validateSamples(x, c, m); err != nil {
		return nil, err
	}

	p, err := deriveGridParams(m, opts.Eps)
	if err != nil {
		return nil, err
	}

	spread := spreadFast
	if opts.Method == SpreadGaussianNaive {
		spread = spreadNaive
	}

	grid := make([]complex128, p.mr)
	if opts.Workers > 1 && len(x) > 1 {
		spreadParallel(spread, grid, x, c, opts.Df, p, opts.Workers)
	} else {
		spread(grid, x, c, opts.Df, p)
	}

	ftau, err := fourierGrid(grid, opts.Iflag)
	if err != nil {
		return nil, err
	}

	return deconvolveGrid(ftau, m, len(x), p.tau), nil
}

func validateSamples(x []float64, c []complex128, m int) error {
	if m <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, m)
	}

	if len(x) != len(c) {
		return fmt.Errorf("%w: %d positions, %d weights", ErrLengthMismatch, len(x), len(c))
	}

	if len(x) == 0 {
		return ErrEmptyInput
	}

	return nil
}
