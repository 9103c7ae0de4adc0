package service

import (
	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/internal/store"
)

type Services struct {
	CarService        CarService
	SuggestionService SuggestionService
	TaskService       TaskService
}

func NewServices(repos *store.Repositories, registry VehicleRegistry, generator SuggestionGenerator, logger *logger.Logger) *Services {
	return &Services{
		CarService:        NewCarService(repos.CarRepository, registry, logger),
		SuggestionService: NewSuggestionService(repos.SuggestionRepository, repos.CarRepository, generator, logger),
		TaskService:       NewTaskService(repos.TaskRepository, logger),
	}
}
