// internal/api/handlers/handlers.go
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ps-vitor/ss-monitor/internal/domain"
	"github.com/ps-vitor/ss-monitor/internal/ledger"
	"github.com/ps-vitor/ss-monitor/internal/scanner"
)

// Handler exposes the monitor's state over HTTP: what is configured, how
// many keys the ledger holds, and the outcome of the latest pass.
type Handler struct {
	runner    *scanner.Runner
	locations []domain.Location
	statePath string
}

func New(runner *scanner.Runner, locations []domain.Location, statePath string) *Handler {
	return &Handler{
		runner:    runner,
		locations: locations,
		statePath: statePath,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/status", h.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/scan", h.handleScan).Methods(http.MethodPost)
}

type statusResponse struct {
	Locations []domain.Location `json:"locations"`
	SeenKeys  int               `json:"seen_keys"`
	LastRun   *lastRun          `json:"last_run,omitempty"`
}

type lastRun struct {
	At      time.Time        `json:"at"`
	Results []scanner.Result `json:"results"`
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Locations: h.locations,
		SeenKeys:  ledger.Load(h.statePath).Len(),
	}
	if results, at := h.runner.Last(); !at.IsZero() {
		resp.LastRun = &lastRun{At: at, Results: results}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleScan triggers a full pass and returns its results.
func (h *Handler) handleScan(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.runner.Run(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
