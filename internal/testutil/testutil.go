// Package testutil provides shared numeric test helpers for the mapping
// packages.
package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// Tolerance is the default absolute tolerance for floating comparisons.
const Tolerance = 1e-9

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertInDelta checks that got is within delta of want.
func AssertInDelta(t *testing.T, got, want, delta float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > delta {
		t.Errorf("value = %v, want %v (±%v)", got, want, delta)
	}
}

// AssertUnitVector checks that v has unit length within tolerance.
func AssertUnitVector(t *testing.T, v r2.Vec) {
	t.Helper()
	if n := r2.Norm(v); math.Abs(n-1) > 1e-6 {
		t.Errorf("vector %v has norm %v, want 1", v, n)
	}
}

// AssertVecInDelta checks both components of got against want.
func AssertVecInDelta(t *testing.T, got, want r2.Vec, delta float64) {
	t.Helper()
	if math.Abs(got.X-want.X) > delta || math.Abs(got.Y-want.Y) > delta {
		t.Errorf("vector = %v, want %v (±%v)", got, want, delta)
	}
}
