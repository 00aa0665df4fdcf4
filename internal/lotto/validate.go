package lotto

import (
	"fmt"
	"math"
)

func validatePool(profile, pool string, size, count int) error {
	if size < 1 {
		return &ConfigurationError{Profile: profile, Field: pool + " range", Reason: "must be >= 1"}
	}
	if count < 1 {
		return &ConfigurationError{Profile: profile, Field: pool + " count", Reason: "must be >= 1"}
	}
	if count > size {
		return &ConfigurationError{
			Profile: profile,
			Field:   pool + " count",
			Reason:  fmt.Sprintf("%d exceeds range size %d", count, size),
		}
	}
	return nil
}

// validateWeights rejects negative, NaN and infinite weights and
// returns how many weights are strictly positive.
func validateWeights(weights []float64) (int, error) {
	positive := 0
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, fmt.Errorf("%w: weight[%d]=%v", ErrDegenerateWeights, i, w)
		}
		if w > 0 {
			positive++
		}
	}
	if positive == 0 {
		return 0, ErrDegenerateWeights
	}
	return positive, nil
}
