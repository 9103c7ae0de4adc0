package store

import (
	"context"

	"github.com/bilhold/bilhold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// CarRepository is the persistence boundary for registered cars.
type CarRepository interface {
	// CreateCar inserts a new car and returns the persisted row with
	// server-assigned fields (ID, CreatedAt).
	// Returns ErrRegNrExists on a plate number collision.
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)

	// GetCar returns the car with the given id or ErrCarNotFound.
	GetCar(ctx context.Context, carID int64) (models.Car, error)

	// ListCars returns every registered car.
	ListCars(ctx context.Context) ([]models.Car, error)

	// DeleteCar removes the car with the given id.
	// Returns ErrCarNotFound when no row was deleted.
	DeleteCar(ctx context.Context, carID int64) error
}

// SuggestionRepository is the persistence boundary for AI-generated task
// suggestions.
type SuggestionRepository interface {
	// SaveSuggestions bulk-inserts the given suggestions for one car inside
	// a single transaction and returns the persisted rows in insert order.
	SaveSuggestions(ctx context.Context, suggestions []models.TaskSuggestion) ([]models.TaskSuggestion, error)

	// ListSuggestions returns every suggestion belonging to the car.
	ListSuggestions(ctx context.Context, carID int64) ([]models.TaskSuggestion, error)

	// DeleteSuggestion removes the suggestion with the given id.
	// Returns ErrSuggestionNotFound when no row was deleted.
	DeleteSuggestion(ctx context.Context, suggestionID int64) error
}

// TaskRepository is the persistence boundary for maintenance tasks.
type TaskRepository interface {
	// CreateTask inserts a new task and returns the persisted row.
	// Returns ErrTaskTitleExists when the (car_id, title) constraint is
	// violated.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// ListTasks returns every task belonging to the car.
	ListTasks(ctx context.Context, carID int64) ([]models.Task, error)

	// TaskTitleExists reports whether the car already has a task with the
	// exact given title.
	TaskTitleExists(ctx context.Context, carID int64, title string) (bool, error)

	// UpdateTaskStatus sets the status and completed flag of a task and
	// returns the updated row. Returns ErrTaskNotFound when the task does
	// not exist.
	UpdateTaskStatus(ctx context.Context, taskID int64, status models.TaskStatus, completed bool) (models.Task, error)

	// DeleteTask removes the task with the given id.
	// Returns ErrTaskNotFound when no row was deleted.
	DeleteTask(ctx context.Context, taskID int64) error
}
