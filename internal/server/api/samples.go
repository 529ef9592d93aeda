package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/feature"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/store"
)

// SamplesHandler handles HTTP requests for labeled feature samples.
type SamplesHandler struct {
	store *store.Store
}

// NewSamplesHandler creates a new SamplesHandler with the given store.
func NewSamplesHandler(s *store.Store) *SamplesHandler {
	return &SamplesHandler{store: s}
}

// ServeHTTP routes sample requests.
// Expected paths: /api/samples, /api/samples/{label}
func (h *SamplesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/samples")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.labels(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	label := path
	switch r.Method {
	case http.MethodGet:
		h.list(w, r, label)
	case http.MethodDelete:
		h.delete(w, r, label)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type createSamplesRequest struct {
	Label   string           `json:"label"`
	Vectors []feature.Vector `json:"vectors"`
}

type sampleResponse struct {
	ID        int64          `json:"id"`
	Label     string         `json:"label"`
	Features  feature.Vector `json:"features"`
	CreatedAt string         `json:"created_at"`
}

type listSamplesResponse struct {
	Samples []sampleResponse `json:"samples"`
}

type listLabelsResponse struct {
	Labels []string `json:"labels"`
}

// labels handles GET /api/samples and returns the distinct labels.
func (h *SamplesHandler) labels(w http.ResponseWriter, r *http.Request) {
	labels, err := h.store.Samples().Labels()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list labels")
		return
	}
	writeJSON(w, http.StatusOK, listLabelsResponse{Labels: labels})
}

// list handles GET /api/samples/{label}.
func (h *SamplesHandler) list(w http.ResponseWriter, r *http.Request, label string) {
	samples, err := h.store.Samples().GetByLabel(label)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list samples")
		return
	}

	response := listSamplesResponse{
		Samples: make([]sampleResponse, 0, len(samples)),
	}
	for _, s := range samples {
		response.Samples = append(response.Samples, sampleResponse{
			ID:        s.ID,
			Label:     s.Label,
			Features:  s.Features,
			CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// create handles POST /api/samples.
func (h *SamplesHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createSamplesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Label == "" {
		writeError(w, http.StatusBadRequest, "Label is required")
		return
	}
	if len(req.Vectors) == 0 {
		writeError(w, http.StatusBadRequest, "At least one feature vector is required")
		return
	}

	if err := h.store.Samples().Add(req.Label, req.Vectors); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save samples")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// delete handles DELETE /api/samples/{label}.
func (h *SamplesHandler) delete(w http.ResponseWriter, r *http.Request, label string) {
	if err := h.store.Samples().DeleteByLabel(label); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete samples")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
