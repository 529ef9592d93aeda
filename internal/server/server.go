// Package server provides the HTTP surface of the tracker: health, the
// profile and sample API, the dispatch history, the live state WebSocket,
// and the MJPEG preview stream.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/app"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/server/api"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/store"
)

// Config holds the server configuration. Every field is optional; routes
// are registered only for the collaborators that are present.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
}

// Server is the HTTP server for the tracker.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		profileHandler := api.NewProfileHandler(s.config.Store)
		s.mux.Handle("/api/profiles", profileHandler)
		s.mux.Handle("/api/profiles/", profileHandler)

		samplesHandler := api.NewSamplesHandler(s.config.Store)
		s.mux.Handle("/api/samples", samplesHandler)
		s.mux.Handle("/api/samples/", samplesHandler)

		s.mux.Handle("/api/records", api.NewRecordsHandler(s.config.Store))
	}

	if s.config.App != nil {
		s.mux.Handle("/api/state", NewStateHandler(s.config.App))
		s.mux.Handle("/api/stats", NewStatsHandler(s.config.App))
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.App.Camera()))

		if gate := s.config.App.Gate(); gate != nil {
			gateHandler := api.NewGateHandler(gate, s.config.App.EStop())
			s.mux.Handle("/api/gate", gateHandler)
			s.mux.Handle("/api/gate/", gateHandler)
		}
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
