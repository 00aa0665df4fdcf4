package predict

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/lotto-predictor/internal/game"
	"github.com/xtding233/lotto-predictor/internal/lotto"
	"github.com/xtding233/lotto-predictor/internal/metrics"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	c, err := game.NewCatalog(nil)
	require.NoError(t, err)
	return NewService(lotto.NewEngine(lotto.NewSeededRNG(1), lotto.NewSeededRNG(2)), c, metrics.New())
}

func TestServicePredict(t *testing.T) {
	s := newTestService(t)

	r, err := s.Predict("ssq", "random")
	require.NoError(t, err)
	require.Equal(t, "A", r.Profile)
	require.Equal(t, lotto.UniformRandom, r.Strategy)

	// default strategy of the builtin profiles is time seeded
	r, err = s.Predict("B", "")
	require.NoError(t, err)
	require.Equal(t, lotto.TimeSeeded, r.Strategy)
	require.NotNil(t, r.Seed)

	require.Equal(t, 1.0, testutil.ToFloat64(s.Metrics.Predictions.WithLabelValues("A", "uniform_random", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(s.Metrics.Predictions.WithLabelValues("B", "time_seeded", "ok")))
}

func TestServicePredictErrors(t *testing.T) {
	s := newTestService(t)

	_, err := s.Predict("Z", "random")
	require.ErrorIs(t, err, lotto.ErrUnknownProfile)
	require.True(t, IsClientError(err))

	_, err = s.Predict("A", "psychic")
	require.ErrorIs(t, err, lotto.ErrUnknownStrategy)
	require.True(t, IsClientError(err))

	require.False(t, IsClientError(errors.New("disk on fire")))
}

func TestServicePredictBatch(t *testing.T) {
	s := newTestService(t)

	rs, err := s.PredictBatch("B", "hot", 10)
	require.NoError(t, err)
	require.Len(t, rs, 10)
	for _, r := range rs {
		require.Len(t, r.Main, 5)
		require.Len(t, r.Secondary, 2)
	}

	_, err = s.PredictBatch("B", "hot", 0)
	require.ErrorIs(t, err, ErrBadRequest)
	_, err = s.PredictBatch("B", "hot", MaxBatch+1)
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestServiceSimulate(t *testing.T) {
	s := newTestService(t)

	f, err := s.Simulate("A", "random", 100)
	require.NoError(t, err)
	require.Equal(t, 100, f.Trials)
	require.Len(t, f.MainHits, 33)

	_, err = s.Simulate("A", "random", 0)
	require.ErrorIs(t, err, ErrBadRequest)
	_, err = s.Simulate("nope", "random", 10)
	require.ErrorIs(t, err, lotto.ErrUnknownProfile)
}

func TestServiceProfiles(t *testing.T) {
	s := newTestService(t)
	entries := s.Profiles()
	require.Len(t, entries, 2)
	require.Equal(t, "A", entries[0].Profile.ID)
	require.Equal(t, []string{"ssq"}, entries[0].Aliases)
}
