package lotto

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports a profile or request that asks for more unique
	// numbers than its range holds, or is otherwise malformed.
	ErrConfiguration = errors.New("invalid draw configuration")
	// ErrDegenerateWeights reports a weight vector with no usable mass.
	ErrDegenerateWeights = errors.New("degenerate weights; need at least one positive finite weight")
	ErrUnknownProfile    = errors.New("unknown game profile")
	ErrUnknownStrategy   = errors.New("unknown strategy")
)

// ConfigurationError describes which field of a profile is out of bounds.
type ConfigurationError struct {
	Profile string
	Field   string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Profile == "" {
		return fmt.Sprintf("%s: %s %s", ErrConfiguration, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: profile %q: %s %s", ErrConfiguration, e.Profile, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
