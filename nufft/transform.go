package nufft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fourierGrid applies the length-Mr discrete Fourier transform to the
// convolved grid, delegating to the external FFT backend.
//
// The sign convention follows iflag: a negative iflag requests the
// negative-exponent transform scaled by 1/Mr, which maps to the backend's
// unnormalized Forward plus an explicit rescale; a non-negative iflag
// requests the positive-exponent transform, which the backend's Inverse
// already provides in 1/Mr-normalized form.
func fourierGrid(grid []complex128, iflag int) ([]complex128, error) {
	mr := len(grid)

	plan, err := algofft.NewPlan64(mr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFFTUnavailable, err)
	}

	out := make([]complex128, mr)

	if iflag < 0 {
		if err := plan.Forward(out, grid); err != nil {
			return nil, err
		}

		scale := complex(1/float64(mr), 0)
		for i := range out {
			out[i] *= scale
		}

		return out, nil
	}

	if err := plan.Inverse(out, grid); err != nil {
		return nil, err
	}

	return out, nil
}
