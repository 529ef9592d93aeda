package server

import (
	"encoding/json"
	"net/http"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/app"
)

// StatsHandler serves the label distribution over the recent decision
// window at /api/stats.
type StatsHandler struct {
	app *app.App
}

// NewStatsHandler creates a StatsHandler reading from the given app.
func NewStatsHandler(a *app.App) *StatsHandler {
	return &StatsHandler{app: a}
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.app.Stats()); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
