package main

import (
	"errors"
	"io"
	"testing"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/lotto-predictor/internal/lotto"
)

func TestCheckFlags(t *testing.T) {
	require.NoError(t, checkFlags(1, 0, "", ""))
	require.NoError(t, checkFlags(5, 0, "localhost:9090", ""))
	require.NoError(t, checkFlags(1, 1000, "", "/etc/lotto"))

	for name, err := range map[string]error{
		"zero draws":         checkFlags(0, 0, "", ""),
		"negative trials":    checkFlags(1, -1, "", ""),
		"remote simulate":    checkFlags(1, 1000, "localhost:9090", ""),
		"remote with config": checkFlags(1, 0, "localhost:9090", "/etc/lotto"),
	} {
		require.Error(t, err, name)
	}
	require.ErrorContains(t, checkFlags(1, 1000, "localhost:9090", ""), "cannot be combined with -remote")
}

func TestDrawAllAdvancesBar(t *testing.T) {
	e := lotto.NewEngine(lotto.NewSeededRNG(7), nil)
	draw := func() (lotto.DrawResult, error) { return e.Predict(lotto.ProfileB, lotto.UniformRandom) }

	bar := progressbar.NewOptions64(5, progressbar.OptionSetWriter(io.Discard))
	results, err := drawAll(5, draw, bar)
	require.NoError(t, err)
	require.Len(t, results, 5)
	require.EqualValues(t, 5, bar.State().CurrentNum)

	results, err = drawAll(1, draw, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestDrawAllStopsOnError(t *testing.T) {
	calls := 0
	boom := errors.New("boom")
	_, err := drawAll(3, func() (lotto.DrawResult, error) {
		calls++
		if calls == 2 {
			return lotto.DrawResult{}, boom
		}
		return lotto.DrawResult{}, nil
	}, nil)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, calls)
}
