package api

import (
	"net/http"
	"strings"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
)

// GateHandler exposes the dispatch gate over HTTP so the web UI can
// toggle execution the same way the tray does. When a manual stop is
// wired, /api/gate/stop trips it as a panic button and /api/gate/enable
// clears it before re-enabling, mirroring the tray toggle.
type GateHandler struct {
	gate *action.Gate
	stop *action.ManualStop
}

// NewGateHandler creates a new GateHandler for the given gate. stop may
// be nil when no manual emergency stop is wired.
func NewGateHandler(g *action.Gate, stop *action.ManualStop) *GateHandler {
	return &GateHandler{gate: g, stop: stop}
}

type gateResponse struct {
	Enabled bool `json:"enabled"`
	Stopped bool `json:"stopped"`
}

// ServeHTTP routes gate requests.
// Expected paths: /api/gate, /api/gate/enable, /api/gate/disable, /api/gate/stop
func (h *GateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/gate")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
	case "enable":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if h.stop != nil {
			h.stop.Clear()
		}
		h.gate.Enable()
	case "disable":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.gate.Disable()
	case "stop":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if h.stop != nil {
			h.stop.Trip()
		}
		h.gate.Disable()
	default:
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	stopped := h.stop != nil && h.stop.Triggered()
	writeJSON(w, http.StatusOK, gateResponse{Enabled: h.gate.Enabled(), Stopped: stopped})
}
