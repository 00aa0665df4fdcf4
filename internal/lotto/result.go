package lotto

import (
	"fmt"
	"strings"
)

// DrawResult is one prediction. Seed is set only for TimeSeeded draws so the
// sequence can be replayed with NewSeededRNG.
type DrawResult struct {
	Profile   string   `json:"profile" yaml:"profile"`
	Strategy  Strategy `json:"-" yaml:"-"`
	Seed      *uint64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Main      []int    `json:"main" yaml:"main"`
	Secondary []int    `json:"secondary" yaml:"secondary"`
}

// Format renders the draw as zero-padded two-digit numbers,
// e.g. "03 11 17 22 28 31 + 09".
func (r DrawResult) Format() string {
	return joinPadded(r.Main) + " + " + joinPadded(r.Secondary)
}

func joinPadded(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, " ")
}
