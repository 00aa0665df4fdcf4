// Package predict is the request/response surface shared by the HTTP and
// gRPC front ends: it resolves profile ids and strategy names, calls the
// engine and records metrics.
package predict

import (
	"errors"
	"fmt"
	"time"

	"github.com/xtding233/lotto-predictor/internal/game"
	"github.com/xtding233/lotto-predictor/internal/lotto"
	"github.com/xtding233/lotto-predictor/internal/metrics"
)

const (
	MaxBatch  = 50
	MaxTrials = 100_000
)

// ErrBadRequest marks request parameters outside their accepted bounds.
var ErrBadRequest = errors.New("bad request")

// Service wires the engine to a profile catalog.
type Service struct {
	Engine  *lotto.Engine
	Catalog *game.Catalog
	Metrics *metrics.Metrics
}

// NewService builds a Service and points the engine's profile lookup at the catalog.
func NewService(e *lotto.Engine, c *game.Catalog, m *metrics.Metrics) *Service {
	e.Profiles = c
	return &Service{Engine: e, Catalog: c, Metrics: m}
}

// Predict draws once for profileID. An empty strategy uses the profile's default.
func (s *Service) Predict(profileID, strategy string) (lotto.DrawResult, error) {
	entry, st, err := s.resolve(profileID, strategy)
	if err != nil {
		s.Metrics.ObservePrediction(profileID, st, 0, err)
		return lotto.DrawResult{}, err
	}
	start := time.Now()
	r, err := s.Engine.Predict(entry.Profile, st)
	s.Metrics.ObservePrediction(entry.Profile.ID, st, time.Since(start), err)
	return r, err
}

// PredictBatch draws n independent results. Any failure discards the whole batch.
func (s *Service) PredictBatch(profileID, strategy string, n int) ([]lotto.DrawResult, error) {
	if n < 1 || n > MaxBatch {
		return nil, fmt.Errorf("%w: n must be in 1..%d", ErrBadRequest, MaxBatch)
	}
	out := make([]lotto.DrawResult, 0, n)
	for i := 0; i < n; i++ {
		r, err := s.Predict(profileID, strategy)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Simulate runs a frequency simulation over trials draws.
func (s *Service) Simulate(profileID, strategy string, trials int) (lotto.Frequency, error) {
	if trials < 1 || trials > MaxTrials {
		return lotto.Frequency{}, fmt.Errorf("%w: trials must be in 1..%d", ErrBadRequest, MaxTrials)
	}
	entry, st, err := s.resolve(profileID, strategy)
	if err != nil {
		return lotto.Frequency{}, err
	}
	return lotto.Simulate(s.Engine, entry.Profile, st, trials)
}

// Profiles lists the catalog.
func (s *Service) Profiles() []game.Entry {
	return s.Catalog.List()
}

// IsClientError reports whether err was caused by the request rather than the engine.
func IsClientError(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, lotto.ErrConfiguration) ||
		errors.Is(err, lotto.ErrUnknownProfile) ||
		errors.Is(err, lotto.ErrUnknownStrategy)
}

func (s *Service) resolve(profileID, strategy string) (game.Entry, lotto.Strategy, error) {
	entry, ok := s.Catalog.Entry(profileID)
	if !ok {
		return game.Entry{}, lotto.StrategyUnspecified, fmt.Errorf("%w: %q", lotto.ErrUnknownProfile, profileID)
	}
	if strategy == "" {
		return entry, entry.DefaultStrategy, nil
	}
	st, err := lotto.ParseStrategy(strategy)
	if err != nil {
		return game.Entry{}, lotto.StrategyUnspecified, err
	}
	return entry, st, nil
}
