package simulation

import (
	"runtime"
	"sync"

	"pacbound-go/pkg/randomuniform"

	"gonum.org/v1/gonum/floats"
)

// fallbackThreshold is used when a training set contains no non-negative
// point: the widest threshold is consistent with everything observed.
const fallbackThreshold = 1.0

// EmpiricalRisk of the ERM threshold on its own training set. The classifier
// is chosen to contradict no observed label, so the training error is zero.
const EmpiricalRisk = 0.0

// Trial возвращает порог ERM для одного обучающего набора: минимальное
// неотрицательное значение, либо 1, если таких значений нет
func Trial(draws []float64) float64 {
	var positives []float64
	for _, x := range draws {
		if x >= 0 {
			positives = append(positives, x)
		}
	}
	if len(positives) == 0 {
		return fallbackThreshold
	}
	return floats.Min(positives)
}

// TrueRisk is the misclassification probability of the threshold classifier
// under Uniform[-1,1]: the density is 1/2, so the mass of [0, a) is a/2.
func TrueRisk(a float64) float64 {
	return a / 2.0
}

// Simulator runs independent ERM training experiments and collects the gap
// between true and empirical risk for each of them.
type Simulator struct {
	NTrials  int
	NSamples int
	Seed     int64
	Workers  int // 0 means runtime.NumCPU()
}

func NewSimulator(nTrials, nSamples int, seed int64) *Simulator {
	return &Simulator{
		NTrials:  nTrials,
		NSamples: nSamples,
		Seed:     seed,
	}
}

// Run executes all trials on a worker pool and returns the risk gaps.
// Each worker owns a generator seeded from Seed plus its index, so for a
// fixed Seed and worker count the multiset of gaps is reproducible. The
// order of the returned slice carries no meaning.
func (s *Simulator) Run() []float64 {
	numWorkers := s.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > s.NTrials {
		numWorkers = s.NTrials
	}

	results := make(chan float64, s.NTrials)

	var wg sync.WaitGroup
	for w := range numWorkers {
		count := s.NTrials / numWorkers
		if w < s.NTrials%numWorkers {
			count++
		}

		wg.Add(1)
		go func(id, count int) {
			defer wg.Done()
			gen := randomuniform.NewUniformRandGenerator(-1, 1, s.Seed+int64(id))
			draws := make([]float64, s.NSamples)
			for range count {
				gen.GenerateVector(draws)
				a := Trial(draws)
				results <- TrueRisk(a) - EmpiricalRisk
			}
		}(w, count)
	}

	wg.Wait()
	close(results)

	gaps := make([]float64, 0, s.NTrials)
	for g := range results {
		gaps = append(gaps, g)
	}
	return gaps
}
