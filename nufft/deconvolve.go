package nufft

import "math"

// deconvolveGrid extracts the m central bins of the transformed grid and
// removes the smoothing the Gaussian spreading kernel imposed on the
// spectrum, using the kernel's analytic Fourier transform.
//
// Bin k of the output corresponds to integer frequency k' = k - floor(m/2);
// the selection takes indices [mr - floor(m/2), mr) followed by
// [0, m - floor(m/2)), which handles even and odd m uniformly. Each bin is
// scaled by sqrt(pi/tau) * exp(tau*k'^2) and by the global 1/n.
func deconvolveGrid(ftau []complex128, m, n int, tau float64) []complex128 {
	mr := len(ftau)
	half := m / 2

	out := make([]complex128, m)
	copy(out[:half], ftau[mr-half:])
	copy(out[half:], ftau[:m-half])

	scale := math.Sqrt(math.Pi/tau) / float64(n)
	for k := range out {
		kf := float64(k - half)
		out[k] *= complex(scale*math.Exp(tau*kf*kf), 0)
	}

	return out
}
