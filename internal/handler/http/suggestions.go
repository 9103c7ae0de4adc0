package http

import (
	"net/http"

	"github.com/bilhold/bilhold/internal/logger"
)

func (h *Handler) listSuggestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	carID, ok := idFromURL(r, "carID")
	if !ok {
		http.Error(w, "invalid car id", http.StatusBadRequest)
		return
	}

	suggestions, err := h.services.SuggestionService.ListSuggestions(r.Context(), carID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSuggestions").Int64("car_id", carID).Msg("error listing task suggestions")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, suggestions)
}

func (h *Handler) fetchAISuggestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	carID, ok := idFromURL(r, "carID")
	if !ok {
		http.Error(w, "invalid car id", http.StatusBadRequest)
		return
	}

	suggestions, err := h.services.SuggestionService.FetchAISuggestions(r.Context(), carID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchAISuggestions").Int64("car_id", carID).Msg("error fetching AI suggestions")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, suggestions)
}

func (h *Handler) deleteSuggestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	suggestionID, ok := idFromURL(r, "suggestionID")
	if !ok {
		http.Error(w, "invalid suggestion id", http.StatusBadRequest)
		return
	}

	if err := h.services.SuggestionService.DeleteSuggestion(r.Context(), suggestionID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteSuggestion").Int64("suggestion_id", suggestionID).Msg("error deleting task suggestion")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
