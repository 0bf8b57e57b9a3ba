package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiffComplex(t *testing.T) {
	a := []complex128{1, 2i, 3 + 4i}
	b := []complex128{1, 2i, 0}

	d, err := MaxAbsDiffComplex(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(d-5) > 1e-15 {
		t.Errorf("MaxAbsDiffComplex = %v, want 5", d)
	}

	if _, err := MaxAbsDiffComplex(a, b[:2]); err == nil {
		t.Error("expected length mismatch error")
	}
}

func TestMeanAbs(t *testing.T) {
	if got := MeanAbs(nil); got != 0 {
		t.Errorf("MeanAbs(nil) = %v, want 0", got)
	}

	got := MeanAbs([]complex128{3 + 4i, 1, -1})
	if math.Abs(got-7.0/3.0) > 1e-15 {
		t.Errorf("MeanAbs = %v, want %v", got, 7.0/3.0)
	}
}

func TestRequireComplexNearlyEqual(t *testing.T) {
	a := []complex128{1 + 1i, 2}
	b := []complex128{1 + 1i, 2 + 1e-12i}
	RequireComplexNearlyEqual(t, a, b, 1e-9)
	RequireFiniteComplex(t, a)
}
