package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/xtding233/lotto-predictor/internal/lotto"
	"github.com/xtding233/lotto-predictor/internal/predict"
)

type drawResp struct {
	Profile   string  `json:"profile"`
	Strategy  string  `json:"strategy"`
	Main      []int   `json:"main"`
	Secondary []int   `json:"secondary"`
	Seed      *uint64 `json:"seed,omitempty"`
	Formatted string  `json:"formatted"`
}

type singleResp struct {
	Draw *drawResp `json:"draw,omitempty"`
	Err  string    `json:"err,omitempty"`
}

type batchResp struct {
	Draws []drawResp `json:"draws,omitempty"`
	Err   string     `json:"err,omitempty"`
}

type simulateResp struct {
	Frequency *lotto.Frequency `json:"frequency,omitempty"`
	Hottest   []int            `json:"hottest,omitempty"`
	Err       string           `json:"err,omitempty"`
}

type profileResp struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Aliases         []string `json:"aliases,omitempty"`
	MainRange       int      `json:"main_range"`
	MainCount       int      `json:"main_count"`
	SecondaryRange  int      `json:"secondary_range"`
	SecondaryCount  int      `json:"secondary_count"`
	DefaultStrategy string   `json:"default_strategy"`
}

// Handler serves the JSON API over a predict.Service.
type Handler struct {
	svc *predict.Service
}

func NewHandler(svc *predict.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /predict", h.handlePredict)
	mux.HandleFunc("GET /predict_batch", h.handlePredictBatch)
	mux.HandleFunc("GET /simulate", h.handleSimulate)
	mux.HandleFunc("GET /profiles", h.handleProfiles)
	mux.HandleFunc("GET /healthz", Healthz())
}

// Healthz returns a simple HandlerFunc simply replying with "OK"
func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK\n"))
	}
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func toDrawResp(r lotto.DrawResult) drawResp {
	return drawResp{
		Profile:   r.Profile,
		Strategy:  r.Strategy.String(),
		Main:      r.Main,
		Secondary: r.Secondary,
		Seed:      r.Seed,
		Formatted: r.Format(),
	}
}

func errStatus(err error) int {
	if predict.IsClientError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// single prediction
func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	profile := r.URL.Query().Get("profile")
	if profile == "" {
		http.Error(w, "missing param profile", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Predict(profile, r.URL.Query().Get("strategy"))
	if err != nil {
		writeJSON(w, errStatus(err), singleResp{Err: "prediction failed: " + err.Error()})
		return
	}
	d := toDrawResp(res)
	writeJSON(w, http.StatusOK, singleResp{Draw: &d})
}

// n predictions, all or nothing
func (h *Handler) handlePredictBatch(w http.ResponseWriter, r *http.Request) {
	profile := r.URL.Query().Get("profile")
	if profile == "" {
		http.Error(w, "missing param profile", http.StatusBadRequest)
		return
	}
	n, ok, msg := parseInt(r, "n")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !ok {
		n = 1
	}
	res, err := h.svc.PredictBatch(profile, r.URL.Query().Get("strategy"), n)
	if err != nil {
		writeJSON(w, errStatus(err), batchResp{Err: "prediction failed: " + err.Error()})
		return
	}
	draws := make([]drawResp, len(res))
	for i, d := range res {
		draws[i] = toDrawResp(d)
	}
	writeJSON(w, http.StatusOK, batchResp{Draws: draws})
}

// frequency simulation
func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	profile := r.URL.Query().Get("profile")
	if profile == "" {
		http.Error(w, "missing param profile", http.StatusBadRequest)
		return
	}
	trials, ok, msg := parseInt(r, "trials")
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !ok {
		trials = 1000
	}
	f, err := h.svc.Simulate(profile, r.URL.Query().Get("strategy"), trials)
	if err != nil {
		writeJSON(w, errStatus(err), simulateResp{Err: "simulation failed: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, simulateResp{Frequency: &f, Hottest: f.Hottest(10)})
}

func (h *Handler) handleProfiles(w http.ResponseWriter, r *http.Request) {
	entries := h.svc.Profiles()
	out := make([]profileResp, len(entries))
	for i, e := range entries {
		out[i] = profileResp{
			ID:              e.Profile.ID,
			Name:            e.Profile.Name,
			Aliases:         e.Aliases,
			MainRange:       e.Profile.MainRange,
			MainCount:       e.Profile.MainCount,
			SecondaryRange:  e.Profile.SecondaryRange,
			SecondaryCount:  e.Profile.SecondaryCount,
			DefaultStrategy: e.DefaultStrategy.String(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}
