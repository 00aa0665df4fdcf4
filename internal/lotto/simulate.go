package lotto

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes per-number hit counts.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// Frequency reports how often every number came up over a simulation run.
// MainHits[i] counts number i+1 of the main pool; likewise SecondaryHits.
type Frequency struct {
	Profile       string `json:"profile"`
	Strategy      string `json:"strategy"`
	Trials        int    `json:"trials"`
	MainHits      []int  `json:"main_hits"`
	SecondaryHits []int  `json:"secondary_hits"`
	MainStats     Stats  `json:"main_stats"`
}

// Hottest returns the n main numbers with the most hits, ties broken by the
// lower number.
func (f Frequency) Hottest(n int) []int {
	nums := make([]int, len(f.MainHits))
	for i := range nums {
		nums[i] = i + 1
	}
	slices.SortStableFunc(nums, func(a, b int) int {
		return f.MainHits[b-1] - f.MainHits[a-1]
	})
	if n < len(nums) {
		nums = nums[:n]
	}
	return nums
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	if len(xs) == 0 {
		return Stats{}
	}
	data := make([]float64, len(xs))
	for i, v := range xs {
		data[i] = float64(v)
	}
	mean := stat.Mean(data, nil)
	variance := stat.PopVariance(data, nil)

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	percentile := func(p float64) float64 {
		return stat.Quantile(p, stat.LinInterp, sorted, nil)
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}

// Simulate repeats trials draws of p under s and counts every number drawn.
// A failing draw aborts the run; trials <= 0 yields an empty Frequency.
func Simulate(e *Engine, p GameProfile, s Strategy, trials int) (Frequency, error) {
	f := Frequency{Profile: p.ID, Strategy: s.String()}
	if trials <= 0 {
		return f, nil
	}
	if err := p.Validate(); err != nil {
		return Frequency{}, err
	}

	f.Trials = trials
	f.MainHits = make([]int, p.MainRange)
	f.SecondaryHits = make([]int, p.SecondaryRange)
	for i := 0; i < trials; i++ {
		r, err := e.Predict(p, s)
		if err != nil {
			return Frequency{}, err
		}
		for _, n := range r.Main {
			f.MainHits[n-1]++
		}
		for _, n := range r.Secondary {
			f.SecondaryHits[n-1]++
		}
	}
	f.MainStats = calcStats(f.MainHits)
	return f, nil
}
