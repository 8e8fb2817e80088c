package stats

import (
	"math"
	"slices"
)

// Percentile returns the p-th percentile of values using linear
// interpolation at rank p*(N-1). p must be in [0, 1]. The input slice is not
// modified (a copy is sorted internally). Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	count := len(values)
	if count == 0 {
		return 0
	}

	sorted := make([]float64, count)
	copy(sorted, values)
	slices.Sort(sorted)

	idx := p * float64(count-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))

	if lower == upper || upper >= count {
		return sorted[lower]
	}

	frac := idx - float64(lower)

	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// PACBound evaluates the VC generalization bound
//
//	2 * sqrt( (2/n) * ( h*ln(n) + h*ln(2e) + ln(2/delta) ) )
//
// h multiplies both log terms. Pure function of the three parameters;
// не зависит от результатов симуляции
func PACBound(nSamples, h int, delta float64) float64 {
	n := float64(nSamples)
	hf := float64(h)

	complexityTerm := hf*math.Log(n) + hf*math.Log(2*math.E) + math.Log(2/delta)

	return 2 * math.Sqrt((2/n)*complexityTerm)
}
