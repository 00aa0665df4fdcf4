package lotto

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// WeightFloor keeps every hot-number weight strictly positive.
const WeightFloor = 1e-9

// HotWeights returns the placeholder "hot number" curve 1 + sin(x/3) for
// x in 1..n, floored at WeightFloor and normalized to sum to 1.
// The curve is cosmetic; it is not derived from any draw history.
func HotWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	for i := range w {
		x := float64(i + 1)
		w[i] = math.Max(1+math.Sin(x/3), WeightFloor)
	}
	floats.Scale(1/floats.Sum(w), w)
	return w
}

// SampleWeighted picks k distinct items from population, each pick made with
// probability proportional to the remaining items' weights. A picked item
// leaves the pool before the next pick. The result is in pick order.
func SampleWeighted(population []int, weights []float64, k int, src RandomSource) ([]int, error) {
	if len(population) != len(weights) {
		return nil, fmt.Errorf("%w: %d items but %d weights", ErrConfiguration, len(population), len(weights))
	}
	if k < 0 || k > len(population) {
		return nil, &ConfigurationError{Field: "sample size", Reason: fmt.Sprintf("%d outside [0, %d]", k, len(population))}
	}
	if k == 0 {
		return []int{}, nil
	}
	positive, err := validateWeights(weights)
	if err != nil {
		return nil, err
	}
	if k > positive {
		return nil, fmt.Errorf("%w: only %d positive weights for %d picks", ErrDegenerateWeights, positive, k)
	}
	if src == nil {
		src = DefaultRNG()
	}

	pool := sampleuv.NewWeighted(weights, src)
	taken := make([]bool, len(population))
	out := make([]int, 0, k)
	// Rounding in the weight heap can land on an exhausted slot; skip those.
	for attempts := 0; len(out) < k && attempts < 4*len(population)+k; attempts++ {
		idx, ok := pool.Take()
		if !ok {
			break
		}
		if taken[idx] || weights[idx] == 0 {
			continue
		}
		taken[idx] = true
		out = append(out, population[idx])
	}
	if len(out) < k {
		return nil, fmt.Errorf("%w: weight pool exhausted after %d of %d picks", ErrDegenerateWeights, len(out), k)
	}
	return out, nil
}
