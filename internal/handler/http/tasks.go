package http

import (
	"encoding/json"
	"net/http"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	carID, ok := idFromURL(r, "carID")
	if !ok {
		http.Error(w, "invalid car id", http.StatusBadRequest)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), carID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTasks").Int64("car_id", carID).Msg("error listing tasks")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, tasks)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	carID, ok := idFromURL(r, "carID")
	if !ok {
		http.Error(w, "invalid car id", http.StatusBadRequest)
		return
	}

	var request models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createTask").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), carID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTask").Int64("car_id", carID).Msg("error creating task")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusCreated, task)
}

func (h *Handler) updateTaskStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	taskID, ok := idFromURL(r, "taskID")
	if !ok {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var request models.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateTaskStatus").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTaskStatus(r.Context(), taskID, request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTaskStatus").Int64("task_id", taskID).Msg("error updating task status")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, r, http.StatusOK, task)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	taskID, ok := idFromURL(r, "taskID")
	if !ok {
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.services.TaskService.DeleteTask(r.Context(), taskID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTask").Int64("task_id", taskID).Msg("error deleting task")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
