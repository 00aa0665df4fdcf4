package lotto

import (
	"fmt"
	"strings"
)

// Strategy selects how a draw samples its numbers.
type Strategy int

const (
	StrategyUnspecified Strategy = iota
	// TimeSeeded reseeds a fresh generator from the spacetime seed for every draw.
	TimeSeeded
	// FrequencyWeighted biases main numbers with a fixed sine curve.
	FrequencyWeighted
	// UniformRandom samples uniformly from the engine's ambient generator.
	UniformRandom
)

func (s Strategy) String() string {
	switch s {
	case TimeSeeded:
		return "time_seeded"
	case FrequencyWeighted:
		return "frequency_weighted"
	case UniformRandom:
		return "uniform_random"
	default:
		return "unspecified"
	}
}

// ParseStrategy accepts the canonical names plus the short spacetime/hot/random forms.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time_seeded", "spacetime":
		return TimeSeeded, nil
	case "frequency_weighted", "hot":
		return FrequencyWeighted, nil
	case "uniform_random", "random":
		return UniformRandom, nil
	default:
		return StrategyUnspecified, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Strategies lists every selectable strategy.
func Strategies() []Strategy {
	return []Strategy{TimeSeeded, FrequencyWeighted, UniformRandom}
}
