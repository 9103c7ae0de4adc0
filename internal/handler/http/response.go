package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/go-chi/chi/v5"
)

// writeJSON serializes payload into the response with the given status.
// An encoding failure after the header is written can only be logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
	}
}

// idFromURL extracts a positive int64 URL parameter from the chi route
// context. ok is false when the segment is missing or not a valid id.
func idFromURL(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
