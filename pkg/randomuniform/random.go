package randomuniform

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// UniformRandGenerator генерирует случайные числа с равномерным распределением
// в заданном интервале [low, high)
type UniformRandGenerator struct {
	dist distuv.Uniform
}

// NewUniformRandGenerator создает новый генератор; одинаковое зерно дает
// одинаковую последовательность
func NewUniformRandGenerator(low, high float64, seed int64) *UniformRandGenerator {
	if low >= high {
		panic("low must be less than high")
	}
	src := rand.NewSource(uint64(seed))
	return &UniformRandGenerator{
		dist: distuv.Uniform{
			Min: low,
			Max: high,
			Src: src,
		},
	}
}

// Rand генерирует одно случайное число в заданном интервале
func (g *UniformRandGenerator) Rand() float64 {
	return g.dist.Rand()
}

// GenerateVector заполняет срез случайными числами
func (g *UniformRandGenerator) GenerateVector(v []float64) error {
	for i := range v {
		v[i] = g.Rand()
	}
	return nil
}

// RandN генерирует n случайных чисел в заданном интервале
func (g *UniformRandGenerator) RandN(n int) []float64 {
	result := make([]float64, n)
	g.GenerateVector(result)
	return result
}
