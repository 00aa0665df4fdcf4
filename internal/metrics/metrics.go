package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xtding233/lotto-predictor/internal/lotto"
)

// Metrics counts predictions and catalog reloads. A nil *Metrics is a no-op.
type Metrics struct {
	registry *prometheus.Registry

	Predictions  *prometheus.CounterVec   // predictions by profile, strategy and status
	DrawDuration *prometheus.HistogramVec // time spent inside the engine per strategy
	Reloads      *prometheus.CounterVec   // profile catalog reloads by status
}

// list of useful histogram buckets, draws are sub-millisecond
var histogramBuckets = []float64{0.00001, 0.0001, 0.001, 0.01, 0.1}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	m := &Metrics{registry: reg}

	m.Predictions = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "lotto_predictions_total",
		Help: "predictions served; partitioned by profile, strategy and status",
	}, []string{"profile", "strategy", "status"})

	m.DrawDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lotto_draw_duration_seconds",
		Help:    "time spent drawing one prediction; partitioned by strategy",
		Buckets: histogramBuckets,
	}, []string{"strategy"})

	m.Reloads = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "lotto_profile_reloads_total",
		Help: "profile catalog reloads; partitioned by status",
	}, []string{"status"})

	return m
}

// ObservePrediction records one engine call.
func (m *Metrics) ObservePrediction(profile string, s lotto.Strategy, took time.Duration, err error) {
	if m == nil {
		return
	}
	m.Predictions.WithLabelValues(profile, s.String(), status(err)).Inc()
	m.DrawDuration.WithLabelValues(s.String()).Observe(took.Seconds())
}

// ObserveReload records one catalog reload attempt.
func (m *Metrics) ObserveReload(err error) {
	if m == nil {
		return
	}
	m.Reloads.WithLabelValues(reloadStatus(err)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, lotto.ErrConfiguration),
		errors.Is(err, lotto.ErrUnknownProfile),
		errors.Is(err, lotto.ErrUnknownStrategy):
		return "invalid"
	default:
		return "error"
	}
}

func reloadStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
