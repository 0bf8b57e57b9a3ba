package nufft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-nufft/internal/testutil"
)

func TestMagnitude(t *testing.T) {
	in := testutil.RandomWeights(31, 137)

	got := Magnitude(in)
	want := make([]float64, len(in))
	for i, v := range in {
		want[i] = cmplx.Abs(v)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	if Magnitude(nil) != nil {
		t.Error("Magnitude(nil) should be nil")
	}
}

func TestPower(t *testing.T) {
	in := testutil.RandomWeights(32, 137)

	got := Power(in)
	want := make([]float64, len(in))
	for i, v := range in {
		want[i] = real(v)*real(v) + imag(v)*imag(v)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	if Power(nil) != nil {
		t.Error("Power(nil) should be nil")
	}
}

func TestFromParts(t *testing.T) {
	re := []float64{3, 0, -1}
	im := []float64{4, 2, 0}

	mag := make([]float64, 3)
	MagnitudeFromParts(mag, re, im)
	testutil.RequireSliceNearlyEqual(t, mag, []float64{5, 2, 1}, 1e-12)

	pow := make([]float64, 3)
	PowerFromParts(pow, re, im)
	testutil.RequireSliceNearlyEqual(t, pow, []float64{25, 4, 1}, 1e-12)
}

func TestMagnitudeOfTransform(t *testing.T) {
	// Magnitudes of a flat spectrum are all 1.
	res, err := Transform([]float64{0}, []complex128{1}, 8, DefaultOptions())
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	for i, v := range Magnitude(res) {
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("bin %d: |F| = %v, want 1", i, v)
		}
	}
}
