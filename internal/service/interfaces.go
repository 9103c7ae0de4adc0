package service

import (
	"context"

	"github.com/bilhold/bilhold/internal/suggest"
	"github.com/bilhold/bilhold/internal/vegvesen"
	"github.com/bilhold/bilhold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// CarService covers the car-registration lifecycle: registration with
// registry enrichment, listing, lookup and deletion.
type CarService interface {
	// RegisterCar validates and normalizes the plate number, enriches the
	// car from the vehicle registry (substituting sentinel attributes when
	// the lookup fails) and persists it.
	RegisterCar(ctx context.Context, request models.RegisterCarRequest) (models.Car, error)

	ListCars(ctx context.Context) ([]models.Car, error)
	GetCar(ctx context.Context, carID int64) (models.Car, error)
	DeleteCar(ctx context.Context, carID int64) error
}

// SuggestionService covers AI-generated maintenance-task suggestions.
type SuggestionService interface {
	ListSuggestions(ctx context.Context, carID int64) ([]models.TaskSuggestion, error)

	// FetchAISuggestions generates suggestions for the car and persists
	// them as a batch. Fails only when the car is absent or persistence
	// fails — generation itself cannot fail.
	FetchAISuggestions(ctx context.Context, carID int64) ([]models.TaskSuggestion, error)

	DeleteSuggestion(ctx context.Context, suggestionID int64) error
}

// TaskService covers actionable maintenance tasks and their status.
type TaskService interface {
	CreateTask(ctx context.Context, carID int64, request models.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, carID int64) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID int64, request models.UpdateTaskStatusRequest) (models.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

// VehicleRegistry is the enrichment collaborator of the car service.
// Implemented by [vegvesen.Client].
type VehicleRegistry interface {
	LookupVehicle(ctx context.Context, regNr string) (vegvesen.VehicleAttributes, error)
}

// SuggestionGenerator is the generation collaborator of the suggestion
// service. Implemented by [suggest.Generator]; the contract is that it
// always returns a non-empty list and never fails.
type SuggestionGenerator interface {
	GenerateSuggestions(ctx context.Context, car suggest.CarInfo) []suggest.Suggestion
}
