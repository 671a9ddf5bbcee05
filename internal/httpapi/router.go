package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dwizi/dandi/internal/config"
	"github.com/dwizi/dandi/internal/store"
)

const maxBodyBytes = 1 << 20

type Dependencies struct {
	Config config.Config
	Store  *store.Store
	Logger *slog.Logger
	// Metrics defaults to a fresh registry when nil.
	Metrics *Metrics
}

type router struct {
	deps    Dependencies
	metrics *Metrics
	contact *clientLimiters
}

func NewRouter(deps Dependencies) http.Handler {
	metrics := deps.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}
	rt := &router{
		deps:    deps,
		metrics: metrics,
		contact: newClientLimiters(deps.Config.ContactRatePerMinute, deps.Config.ContactBurst),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.handleHealth)
	mux.HandleFunc("/readyz", rt.handleReady)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/api/info", metrics.instrument("/api/info", rt.handleInfo))
	mux.HandleFunc("/api/keys", metrics.instrument("/api/keys", rt.handleKeys))
	mux.HandleFunc("/api/keys/{id}", metrics.instrument("/api/keys/{id}", rt.handleKey))
	mux.HandleFunc("/api/contact", metrics.instrument("/api/contact", rt.handleContact))
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, req *http.Request, out any) bool {
	req.Body = http.MaxBytesReader(w, req.Body, maxBodyBytes)
	if err := json.NewDecoder(req.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return false
	}
	return true
}
