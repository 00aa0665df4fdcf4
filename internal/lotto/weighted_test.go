package lotto

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleWeightedSingle(t *testing.T) {
	rng := NewSeededRNG(1)
	for i := 0; i < 100; i++ {
		got, err := SampleWeighted([]int{10, 20, 30}, []float64{1, 1, 1}, 1, rng)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Contains(t, []int{10, 20, 30}, got[0])
	}
}

func TestSampleWeightedWholePopulation(t *testing.T) {
	rng := NewSeededRNG(2)
	for _, w := range [][]float64{{1, 1, 1}, {0.01, 5, 100}, {3, 1e-6, 2}} {
		got, err := SampleWeighted([]int{10, 20, 30}, w, 3, rng)
		require.NoError(t, err)
		slices.Sort(got)
		require.Equal(t, []int{10, 20, 30}, got)
	}
}

func TestSampleWeightedNoDuplicates(t *testing.T) {
	rng := NewSeededRNG(3)
	pop := make([]int, 35)
	for i := range pop {
		pop[i] = i + 1
	}
	for i := 0; i < 500; i++ {
		got, err := SampleWeighted(pop, HotWeights(35), 5, rng)
		require.NoError(t, err)
		require.Len(t, got, 5)
		uniq := slices.Clone(got)
		slices.Sort(uniq)
		require.Len(t, slices.Compact(uniq), 5)
	}
}

func TestSampleWeightedFavoursHeavyItems(t *testing.T) {
	rng := NewSeededRNG(4)
	hits := map[int]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		got, err := SampleWeighted([]int{1, 2}, []float64{9, 1}, 1, rng)
		require.NoError(t, err)
		hits[got[0]]++
	}
	freq := float64(hits[1]) / n
	// should be around 0.9
	require.InDelta(t, 0.9, freq, 0.02)
}

func TestSampleWeightedZeroWeightNeverPicked(t *testing.T) {
	rng := NewSeededRNG(5)
	for i := 0; i < 200; i++ {
		got, err := SampleWeighted([]int{1, 2, 3}, []float64{1, 0, 1}, 2, rng)
		require.NoError(t, err)
		require.NotContains(t, got, 2)
	}
}

func TestSampleWeightedErrors(t *testing.T) {
	rng := NewSeededRNG(6)

	_, err := SampleWeighted([]int{1, 2}, []float64{0, 0}, 1, rng)
	require.ErrorIs(t, err, ErrDegenerateWeights)

	_, err = SampleWeighted([]int{1, 2}, []float64{-1, 2}, 1, rng)
	require.ErrorIs(t, err, ErrDegenerateWeights)

	_, err = SampleWeighted([]int{1, 2}, []float64{math.NaN(), 2}, 1, rng)
	require.ErrorIs(t, err, ErrDegenerateWeights)

	_, err = SampleWeighted([]int{1, 2, 3}, []float64{1, 0, 0}, 2, rng)
	require.ErrorIs(t, err, ErrDegenerateWeights)

	_, err = SampleWeighted([]int{1, 2}, []float64{1}, 1, rng)
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = SampleWeighted([]int{1, 2}, []float64{1, 1}, 3, rng)
	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestSampleWeightedZeroPicks(t *testing.T) {
	got, err := SampleWeighted([]int{1}, []float64{1}, 0, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestHotWeights(t *testing.T) {
	w := HotWeights(33)
	require.Len(t, w, 33)
	sum := 0.0
	for _, v := range w {
		require.Greater(t, v, 0.0)
		sum += v
	}
	require.InDelta(t, 1.0, sum, 1e-12)
	// shape follows 1 + sin(x/3): x=5 sits near the crest, x=14 near the trough
	require.Greater(t, w[4], w[13])
	require.Nil(t, HotWeights(0))
}
