package nufft

import (
	"math"
	"sync"
)

// SpreadMethod selects the gridding implementation.
type SpreadMethod int

const (
	// SpreadGaussianFast uses the factored Gaussian kernel evaluation.
	// Per sample it computes two exponentials and obtains every tap by
	// repeated multiplication against a shared per-call table, so the
	// total transcendental count is O(N + Msp) instead of O(N*Msp).
	SpreadGaussianFast SpreadMethod = iota

	// SpreadGaussianNaive evaluates the Gaussian kernel directly at every
	// tap (2*Msp exponentials per sample). Algebraically equivalent to
	// SpreadGaussianFast; kept for cross-checking and benchmarking.
	SpreadGaussianNaive
)

// expFunc is the exponential used by the spreaders. Tests swap it for a
// counting wrapper to pin the transcendental operation counts.
var expFunc = math.Exp

// spreadFunc scatters weighted samples onto the periodic oversampled grid.
// Accumulation is additive, so contributions from samples that map to the
// same cell combine independent of order up to floating-point rounding.
type spreadFunc func(grid []complex128, x []float64, c []complex128, df float64, p gridParams)

// spreadNaive adds each sample's periodically wrapped truncated-Gaussian
// contribution to the grid, evaluating the kernel directly at every tap.
func spreadNaive(grid []complex128, x []float64, c []complex128, df float64, p gridParams) {
	hx := 2 * math.Pi / float64(p.mr)

	for i := range x {
		xi := math.Mod(x[i]*df, 2*math.Pi)
		if xi < 0 {
			xi += 2 * math.Pi
		}

		m := 1 + int(xi/hx)
		for mm := -p.msp; mm < p.msp; mm++ {
			d := xi - hx*float64(m+mm)
			w := expFunc(-0.25 * d * d / p.tau)
			grid[wrapIndex(m+mm, p.mr)] += c[i] * complex(w, 0)
		}
	}
}

// spreadFast is the factored form of spreadNaive.
//
// With xi' the sample's offset from its anchor cell, each tap value
// exp(-(xi' - hx*mm)^2 / (4*tau)) factors into
//
//	E1 * E2^mm * E3[|mm|]
//
// where E1 = exp(-xi'^2/(4*tau)) and E2 = exp(xi'*pi/(Mr*tau)) are computed
// once per sample, successive powers of E2 come from a running product, and
// E3[j] = exp(-(pi*j/Mr)^2/tau) is a table shared by the whole call.
func spreadFast(grid []complex128, x []float64, c []complex128, df float64, p gridParams) {
	mr := float64(p.mr)
	hx := 2 * math.Pi / mr

	e3 := make([]float64, p.msp+1)
	for j := range e3 {
		d := math.Pi * float64(j) / mr
		e3[j] = expFunc(-d * d / p.tau)
	}

	for i := range x {
		xi := math.Mod(x[i]*df, 2*math.Pi)
		if xi < 0 {
			xi += 2 * math.Pi
		}

		m := 1 + int(xi/hx)
		xi -= hx * float64(m) // offset from the anchor cell, in [-hx, 0)

		e1 := expFunc(-0.25 * xi * xi / p.tau)
		e2 := expFunc(xi * math.Pi / (mr * p.tau))
		v := c[i] * complex(e1, 0)

		e2pow := 1.0
		for mm := range p.msp {
			grid[wrapIndex(m+mm, p.mr)] += v * complex(e2pow*e3[mm], 0)
			e2pow *= e2
			grid[wrapIndex(m-mm-1, p.mr)] += v * complex(e3[mm+1]/e2pow, 0)
		}
	}
}

// spreadParallel partitions the samples across workers, each spreading onto
// its own scratch grid, and merges the scratch grids by elementwise addition.
// Only the accumulation order changes relative to a sequential run, so results
// may differ within floating-point rounding but never mathematically.
func spreadParallel(spread spreadFunc, grid []complex128, x []float64, c []complex128, df float64, p gridParams, workers int) {
	if workers > len(x) {
		workers = len(x)
	}

	scratch := make([][]complex128, workers)
	chunk := (len(x) + workers - 1) / workers

	var wg sync.WaitGroup

	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, len(x))
		if lo >= hi {
			break
		}

		scratch[w] = make([]complex128, p.mr)
		wg.Add(1)

		go func(g []complex128, xs []float64, cs []complex128) {
			defer wg.Done()
			spread(g, xs, cs, df, p)
		}(scratch[w], x[lo:hi], c[lo:hi])
	}

	wg.Wait()

	for _, g := range scratch {
		if g == nil {
			continue
		}
		for i, v := range g {
			grid[i] += v
		}
	}
}

// wrapIndex reduces i into [0, n) with the sign convention of a periodic grid.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
