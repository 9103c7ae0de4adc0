package http

import (
	"encoding/json"
	"net/http"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/models"
)

func (h *Handler) registerCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterCarRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.registerCar").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	car, err := h.services.CarService.RegisterCar(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerCar").Str("reg_nr", request.RegNr).Msg("error registering car")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, car)
}

func (h *Handler) listCars(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cars, err := h.services.CarService.ListCars(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCars").Msg("error listing cars")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, cars)
}

func (h *Handler) getCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	carID, ok := idFromURL(r, "carID")
	if !ok {
		http.Error(w, "invalid car id", http.StatusBadRequest)
		return
	}

	car, err := h.services.CarService.GetCar(r.Context(), carID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCar").Int64("car_id", carID).Msg("error getting car")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, car)
}

func (h *Handler) deleteCar(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	carID, ok := idFromURL(r, "carID")
	if !ok {
		http.Error(w, "invalid car id", http.StatusBadRequest)
		return
	}

	if err := h.services.CarService.DeleteCar(r.Context(), carID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteCar").Int64("car_id", carID).Msg("error deleting car")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
