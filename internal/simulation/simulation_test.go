package simulation

import (
	"math"
	"slices"
	"testing"

	"pacbound-go/pkg/randomuniform"
)

const Tolerance = 1e-9

func Equals(a, b float64) bool {
	delta := math.Abs(a - b)
	if delta < Tolerance {
		return true
	}
	return false
}

// TestTrialPicksMinNonNegative tests that the ERM threshold is the smallest
// non-negative draw.
func TestTrialPicksMinNonNegative(t *testing.T) {
	a := Trial([]float64{0.5, -0.3, 0.2, -0.9, 0.7})
	if !Equals(a, 0.2) {
		t.Errorf("Expected a to be 0.2, got %v", a)
	}
}

// TestTrialZeroIsNonNegative tests the x >= 0 convention boundary.
func TestTrialZeroIsNonNegative(t *testing.T) {
	a := Trial([]float64{-0.5, 0.0, 0.7})
	if !Equals(a, 0.0) {
		t.Errorf("Expected a to be 0, got %v", a)
	}
}

// TestTrialFallback tests the all-negative training set: a = 1 and the risk
// gap is exactly 0.5.
func TestTrialFallback(t *testing.T) {
	a := Trial([]float64{-0.1, -0.9, -0.5})
	if a != 1.0 {
		t.Errorf("Expected a to be 1.0, got %v", a)
	}
	gap := TrueRisk(a) - EmpiricalRisk
	if gap != 0.5 {
		t.Errorf("Expected gap to be 0.5, got %v", gap)
	}
}

// TestGapEqualsHalfThreshold tests that the risk gap of a generated training
// set is a/2 for the threshold that Trial reports.
func TestGapEqualsHalfThreshold(t *testing.T) {
	gen := randomuniform.NewUniformRandGenerator(-1, 1, 321)
	draws := gen.RandN(200)

	a := Trial(draws)
	if !Equals(TrueRisk(a)-EmpiricalRisk, a/2) {
		t.Errorf("Expected gap to equal a/2 = %v", a/2)
	}
}

// TestRunGapBounds tests that every gap lies in (0, 0.5].
func TestRunGapBounds(t *testing.T) {
	sim := NewSimulator(500, 50, 42)
	gaps := sim.Run()

	if len(gaps) != 500 {
		t.Fatalf("Expected 500 gaps, got %d", len(gaps))
	}
	for i, g := range gaps {
		if g <= 0 || g > 0.5 {
			t.Errorf("gap %d = %v is outside (0, 0.5]", i, g)
		}
	}
}

// TestRunReproducible tests that a fixed seed and worker count give the same
// multiset of gaps.
func TestRunReproducible(t *testing.T) {
	simA := NewSimulator(300, 40, 99)
	simA.Workers = 4
	simB := NewSimulator(300, 40, 99)
	simB.Workers = 4

	a := simA.Run()
	b := simB.Run()

	slices.Sort(a)
	slices.Sort(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("multisets diverge at %d: %v != %v", i, a[i], b[i])
		}
	}
}

// TestRunSingleWorkerMatchesDirectTrials tests the driver against a plain
// sequential rerun with the same generator.
func TestRunSingleWorkerMatchesDirectTrials(t *testing.T) {
	const nTrials, nSamples = 100, 30

	sim := NewSimulator(nTrials, nSamples, 2024)
	sim.Workers = 1
	got := sim.Run()

	gen := randomuniform.NewUniformRandGenerator(-1, 1, 2024)
	draws := make([]float64, nSamples)
	for i := range nTrials {
		gen.GenerateVector(draws)
		want := TrueRisk(Trial(draws)) - EmpiricalRisk
		if got[i] != want {
			t.Fatalf("trial %d: got %v, want %v", i, got[i], want)
		}
	}
}
