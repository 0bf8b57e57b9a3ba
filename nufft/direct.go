package nufft

import "math"

// Direct evaluates the non-uniform discrete Fourier transform by direct
// summation:
//
//	F(k) = (1/N) * sum_j c[j] * exp(sign(iflag) * i * k * x[j] * df)
//
// at the m frequencies of [Frequencies](m, df). Cost is O(N*M); it exists as
// an exact reference for validating [Transform] and is not meant for large
// inputs. opts.Eps and opts.Method have no effect here.
func Direct(x []float64, c []complex128, m int, opts Options) ([]complex128, error) {
	opts = opts.withDefaults()

	if err := validateSamples(x, c, m); err != nil {
		return nil, err
	}

	sign := 1.0
	if opts.Iflag < 0 {
		sign = -1
	}

	invN := complex(1/float64(len(x)), 0)
	out := make([]complex128, m)

	for k, f := range Frequencies(m, opts.Df) {
		var sum complex128
		for j, xj := range x {
			s, cs := math.Sincos(sign * f * xj)
			sum += c[j] * complex(cs, s)
		}

		out[k] = sum * invN
	}

	return out, nil
}
