package nufft

import (
	"fmt"
	"math"
)

// gridParams holds the derived parameters of the oversampled grid.
//
// msp is the spreading half-width in grid cells (each sample touches 2*msp
// cells), mr is the oversampled grid length (a power of two), and tau is the
// width parameter of the Gaussian spreading kernel exp(-dx^2 / (4*tau)).
type gridParams struct {
	msp int
	mr  int
	tau float64
}

// deriveGridParams computes the grid parameters for an output of length m at
// accuracy target eps, following the Dutt-Rokhlin parameter selection.
//
// The nominal oversampling ratio is 2 for eps > 1e-11 and 3 below that; the
// extra oversampling is what buys accuracy at the extreme tail. The grid
// length is then padded to the next power of two, the sizes the FFT backend
// plans exactly, and the kernel width is rederived from the realized
// oversampling so the truncation radius hx*msp keeps pace with the padded
// grid. Both the truncation and aliasing error bounds improve monotonically
// with the realized ratio at fixed msp, so the eps target still holds. The
// result is pure in (m, eps) and reused for the whole call.
func deriveGridParams(m int, eps float64) (gridParams, error) {
	if eps <= 1e-33 || eps >= 1e-1 {
		return gridParams{}, fmt.Errorf("%w: got %g", ErrInvalidEps, eps)
	}

	ratio := 2
	if eps <= 1e-11 {
		ratio = 3
	}

	r := float64(ratio)
	msp := int(math.Ceil(-math.Log(eps) / (math.Pi * (r - 1) / (r - 0.5))))
	mr := nextPowerOf2(max(ratio*m, 2*msp))

	realized := float64(mr) / float64(m)
	lambda := float64(msp) / (realized * (realized - 0.5))
	tau := math.Pi * lambda / (float64(m) * float64(m))

	return gridParams{msp: msp, mr: mr, tau: tau}, nil
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
