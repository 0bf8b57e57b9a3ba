package testutil

import (
	"math"
	"testing"
)

func TestRandomPositionsDeterministic(t *testing.T) {
	a := RandomPositions(42, 20*math.Pi, 64)
	b := RandomPositions(42, 20*math.Pi, 64)

	RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if v < -10*math.Pi || v >= 10*math.Pi {
			t.Fatalf("index %d: position %v outside [-10pi, 10pi)", i, v)
		}
	}
}

func TestRandomWeightsDeterministic(t *testing.T) {
	a := RandomWeights(7, 32)
	b := RandomWeights(7, 32)

	RequireComplexNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if real(v) < -0.5 || real(v) >= 0.5 || imag(v) < -0.5 || imag(v) >= 0.5 {
			t.Fatalf("index %d: weight %v outside the unit box", i, v)
		}
	}
}

func TestUnitWeights(t *testing.T) {
	w := UnitWeights(5)
	for i, v := range w {
		if v != 1 {
			t.Fatalf("index %d: got %v, want 1", i, v)
		}
	}
}
