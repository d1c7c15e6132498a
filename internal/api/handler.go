package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucidseq/poaconsensus/internal/config"
	"github.com/lucidseq/poaconsensus/internal/engine"
	consensusjob "github.com/lucidseq/poaconsensus/internal/job"
	"github.com/lucidseq/poaconsensus/internal/metrics"
)

const maxReadsPerJob = 10000

// Handler holds all HTTP handler dependencies.
type Handler struct {
	eng    *engine.Engine
	loader *config.Loader
	mux    *http.ServeMux

	mu   sync.RWMutex
	jobs map[string]*consensusjob.Result
}

// New creates an HTTP handler and registers all routes.
func New(eng *engine.Engine, loader *config.Loader) http.Handler {
	h := &Handler{eng: eng, loader: loader, mux: http.NewServeMux(), jobs: make(map[string]*consensusjob.Result)}

	h.mux.HandleFunc("POST /v1/jobs", h.submitJob)
	h.mux.HandleFunc("GET /v1/jobs/{id}", h.getJob)
	h.mux.HandleFunc("GET /v1/profiles", h.listProfiles)
	h.mux.HandleFunc("POST /v1/profiles/reload", h.reloadProfiles)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

// jobRequest is the POST /v1/jobs request body.
type jobRequest struct {
	Reads       []string          `json:"reads"`
	Profile     string            `json:"profile"`
	MinCoverage int               `json:"min_coverage"`
	FilterExpr  string            `json:"filter_expr"`
	Meta        map[string]string `json:"meta"`
	Async       bool              `json:"async"`
}

// POST /v1/jobs — submit a batch of reads for consensus folding. Synchronous
// by default; set "async": true to get a 202 with a job ID. The result of an
// async job is not stored, so GET /v1/jobs/{id} does not find it.
func (h *Handler) submitJob(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if len(req.Reads) == 0 {
		writeError(w, http.StatusBadRequest, "reads must contain at least one sequence")
		return
	}
	if len(req.Reads) > maxReadsPerJob {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read count %d exceeds max %d", len(req.Reads), maxReadsPerJob))
		return
	}

	cfg := h.loader.Config()
	scoring, err := cfg.Resolve(req.Profile)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	j := &consensusjob.Job{
		ID:          uuid.New().String(),
		Reads:       req.Reads,
		ProfileName: req.Profile,
		Scoring:     scoring,
		MinCoverage: req.MinCoverage,
		FilterExpr:  req.FilterExpr,
		ReceivedAt:  time.Now(),
		Meta:        req.Meta,
	}

	if req.Async {
		if !h.eng.SubmitAsync(j) {
			writeError(w, http.StatusTooManyRequests, "job queue full")
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]interface{}{
			"job_id": j.ID,
			"status": "queued",
		})
		return
	}

	res, err := h.eng.SubmitSync(r.Context(), j)
	if err != nil {
		writeError(w, http.StatusTooManyRequests, err.Error())
		return
	}
	h.storeResult(res)
	metrics.QueueUtilization.Set(h.eng.QueueUtilization())
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) storeResult(res *consensusjob.Result) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.jobs[res.JobID] = res
}

// GET /v1/jobs/{id} — fetch the result of a job completed synchronously.
func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	h.mu.RLock()
	res, ok := h.jobs[id]
	h.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no such job %q", id))
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /v1/profiles — list loaded scoring profiles.
func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version":  cfg.Version,
		"profiles": cfg.Profiles,
	})
}

// POST /v1/profiles/reload — hot-reload the scoring profile config from disk.
func (h *Handler) reloadProfiles(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := config.Validate(cfg); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded":       true,
		"profiles_count": len(cfg.Profiles),
	})
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz — 503 if job queue >80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	util := h.eng.QueueUtilization()
	metrics.QueueUtilization.Set(util)
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ready",
		"queue_utilization": util,
	})
}
