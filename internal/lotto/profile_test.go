package lotto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinProfiles(t *testing.T) {
	require.NoError(t, ProfileA.Validate())
	require.NoError(t, ProfileB.Validate())
	require.Equal(t, 33, ProfileA.MainRange)
	require.Equal(t, 6, ProfileA.MainCount)
	require.Equal(t, 16, ProfileA.SecondaryRange)
	require.Equal(t, 1, ProfileA.SecondaryCount)
	require.Equal(t, 35, ProfileB.MainRange)
	require.Equal(t, 5, ProfileB.MainCount)
	require.Equal(t, 12, ProfileB.SecondaryRange)
	require.Equal(t, 2, ProfileB.SecondaryCount)
}

func TestNewGameProfileCountExceedsRange(t *testing.T) {
	_, err := NewGameProfile("X", "broken", 5, 6, 10, 1)
	require.ErrorIs(t, err, ErrConfiguration)

	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, "main count", cerr.Field)

	_, err = NewGameProfile("X", "broken", 5, 5, 2, 3)
	require.ErrorIs(t, err, ErrConfiguration)
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, "secondary count", cerr.Field)
}

func TestNewGameProfileNonPositive(t *testing.T) {
	for _, c := range [][4]int{{0, 0, 1, 1}, {5, 0, 1, 1}, {5, 1, 0, 0}, {5, 1, 3, -1}} {
		_, err := NewGameProfile("X", "", c[0], c[1], c[2], c[3])
		require.ErrorIs(t, err, ErrConfiguration, "case %v", c)
	}
}

func TestCanonicalID(t *testing.T) {
	require.Equal(t, "A", CanonicalID("ssq"))
	require.Equal(t, "A", CanonicalID(" a "))
	require.Equal(t, "B", CanonicalID("DLT"))
	require.Equal(t, "B", CanonicalID("b"))
	require.Equal(t, "custom", CanonicalID("custom"))
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]Strategy{
		"time_seeded":        TimeSeeded,
		"spacetime":          TimeSeeded,
		"frequency_weighted": FrequencyWeighted,
		"HOT":                FrequencyWeighted,
		"uniform_random":     UniformRandom,
		" random ":           UniformRandom,
	}
	for in, want := range cases {
		got, err := ParseStrategy(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	_, err := ParseStrategy("quantum")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}
