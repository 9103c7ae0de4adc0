package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	router.Route("/api", func(r chi.Router) {
		r.Route("/cars", func(r chi.Router) {
			r.Post("/", h.registerCar)
			r.Get("/", h.listCars)

			r.Route("/{carID}", func(r chi.Router) {
				r.Get("/", h.getCar)
				r.Delete("/", h.deleteCar)

				r.Get("/suggestions", h.listSuggestions)
				r.Post("/suggestions/ai", h.fetchAISuggestions)

				r.Get("/tasks", h.listTasks)
				r.Post("/tasks", h.createTask)
			})
		})

		r.Delete("/suggestions/{suggestionID}", h.deleteSuggestion)

		r.Patch("/tasks/{taskID}/status", h.updateTaskStatus)
		r.Delete("/tasks/{taskID}", h.deleteTask)
	})

	return router
}
