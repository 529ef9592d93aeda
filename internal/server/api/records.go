package api

import (
	"net/http"
	"strconv"

	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/action"
	"github.com/Bhuvaneshwaran-22/Emotion-tracker/internal/store"
)

// defaultRecordLimit caps an unqualified history request.
const defaultRecordLimit = 50

// RecordsHandler serves the dispatch history, read-only.
type RecordsHandler struct {
	store *store.Store
}

// NewRecordsHandler creates a new RecordsHandler with the given store.
func NewRecordsHandler(s *store.Store) *RecordsHandler {
	return &RecordsHandler{store: s}
}

type listRecordsResponse struct {
	Records []action.Record `json:"records"`
}

// ServeHTTP handles GET /api/records?n= and returns the most recent
// dispatch records, newest first.
func (h *RecordsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultRecordLimit
	if n := r.URL.Query().Get("n"); n != "" {
		parsed, err := strconv.Atoi(n)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid record count")
			return
		}
		limit = parsed
	}

	records, err := h.store.Records().Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records")
		return
	}
	if records == nil {
		records = []action.Record{}
	}

	writeJSON(w, http.StatusOK, listRecordsResponse{Records: records})
}
