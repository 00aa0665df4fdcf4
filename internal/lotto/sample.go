package lotto

import (
	"math/rand/v2"
	"slices"
)

// sampleUniform draws k distinct numbers from 1..n, sorted ascending.
func sampleUniform(r *rand.Rand, n, k int) []int {
	numbers := r.Perm(n)[:k]
	for i := range numbers {
		numbers[i]++
	}
	slices.Sort(numbers)
	return numbers
}

// sampleHot draws k distinct numbers from 1..n along the HotWeights curve, sorted ascending.
func sampleHot(src RandomSource, n, k int) ([]int, error) {
	population := make([]int, n)
	for i := range population {
		population[i] = i + 1
	}
	numbers, err := SampleWeighted(population, HotWeights(n), k, src)
	if err != nil {
		return nil, err
	}
	slices.Sort(numbers)
	return numbers, nil
}
