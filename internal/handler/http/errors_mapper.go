package http

import (
	"errors"
	"net/http"

	"github.com/bilhold/bilhold/internal/service"
	"github.com/bilhold/bilhold/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidRegNr:      http.StatusBadRequest,
	service.ErrInvalidTaskData:   http.StatusBadRequest,
	service.ErrInvalidTaskStatus: http.StatusBadRequest,

	store.ErrRegNrExists:        http.StatusConflict,
	store.ErrTaskTitleExists:    http.StatusConflict,
	store.ErrCarNotFound:        http.StatusNotFound,
	store.ErrSuggestionNotFound: http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,

	store.ErrSuggestionsNotSaved: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
