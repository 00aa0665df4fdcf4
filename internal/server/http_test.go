package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xtding233/lotto-predictor/internal/game"
	"github.com/xtding233/lotto-predictor/internal/lotto"
	"github.com/xtding233/lotto-predictor/internal/metrics"
	"github.com/xtding233/lotto-predictor/internal/predict"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	c, err := game.NewCatalog(nil)
	require.NoError(t, err)
	svc := predict.NewService(lotto.NewEngine(lotto.NewSeededRNG(1), lotto.NewSeededRNG(2)), c, metrics.New())
	mux := http.NewServeMux()
	NewHandler(svc).Register(mux)
	return mux
}

func get(t *testing.T, mux *http.ServeMux, url string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	if out != nil && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec.Code
}

func TestHandlePredict(t *testing.T) {
	mux := newTestMux(t)

	var resp singleResp
	code := get(t, mux, "/predict?profile=A&strategy=uniform_random", &resp)
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, resp.Err)
	require.Equal(t, "A", resp.Draw.Profile)
	require.Equal(t, "uniform_random", resp.Draw.Strategy)
	require.Len(t, resp.Draw.Main, 6)
	require.Len(t, resp.Draw.Secondary, 1)
	require.Nil(t, resp.Draw.Seed)
	require.Len(t, resp.Draw.Formatted, len("01 02 03 04 05 06 + 07"))

	resp = singleResp{}
	code = get(t, mux, "/predict?profile=dlt&strategy=spacetime", &resp)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Draw.Seed)
	require.Len(t, resp.Draw.Secondary, 2)
}

func TestHandlePredictErrors(t *testing.T) {
	mux := newTestMux(t)

	require.Equal(t, http.StatusBadRequest, get(t, mux, "/predict", nil))

	var resp singleResp
	require.Equal(t, http.StatusBadRequest, get(t, mux, "/predict?profile=Z", &resp))
	require.Contains(t, resp.Err, "prediction failed")
	require.Nil(t, resp.Draw)

	resp = singleResp{}
	require.Equal(t, http.StatusBadRequest, get(t, mux, "/predict?profile=A&strategy=tarot", &resp))
	require.Contains(t, resp.Err, "unknown strategy")
}

func TestHandlePredictBatch(t *testing.T) {
	mux := newTestMux(t)

	var resp batchResp
	require.Equal(t, http.StatusOK, get(t, mux, "/predict_batch?profile=B&strategy=hot&n=5", &resp))
	require.Len(t, resp.Draws, 5)

	require.Equal(t, http.StatusBadRequest, get(t, mux, "/predict_batch?profile=B&n=x", nil))

	resp = batchResp{}
	require.Equal(t, http.StatusBadRequest, get(t, mux, "/predict_batch?profile=B&n=500", &resp))
	require.Empty(t, resp.Draws)
}

func TestHandleSimulate(t *testing.T) {
	mux := newTestMux(t)

	var resp simulateResp
	require.Equal(t, http.StatusOK, get(t, mux, "/simulate?profile=A&strategy=random&trials=200", &resp))
	require.Equal(t, 200, resp.Frequency.Trials)
	require.Len(t, resp.Hottest, 10)

	require.Equal(t, http.StatusBadRequest, get(t, mux, "/simulate?profile=A&trials=-1", nil))
}

func TestHandleProfilesAndHealth(t *testing.T) {
	mux := newTestMux(t)

	var profiles []profileResp
	require.Equal(t, http.StatusOK, get(t, mux, "/profiles", &profiles))
	require.Len(t, profiles, 2)
	require.Equal(t, "B", profiles[1].ID)
	require.Equal(t, 12, profiles[1].SecondaryRange)
	require.Equal(t, "time_seeded", profiles[1].DefaultStrategy)

	require.Equal(t, http.StatusOK, get(t, mux, "/healthz", nil))
}
