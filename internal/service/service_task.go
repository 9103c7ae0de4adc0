package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/internal/store"
	"github.com/bilhold/bilhold/models"
)

const (
	taskTitleMaxLen       = 100
	taskDescriptionMaxLen = 500
)

type taskService struct {
	taskRepository store.TaskRepository

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// CreateTask validates the payload and inserts a new task in the pending
// state. Duplicate titles are pre-checked for a friendly error; the
// (car_id, title) constraint in the database closes the remaining race,
// and the repository maps that violation to the same sentinel.
func (t *taskService) CreateTask(ctx context.Context, carID int64, request models.CreateTaskRequest) (models.Task, error) {
	if err := validateTaskPayload(request); err != nil {
		return models.Task{}, err
	}

	exists, err := t.taskRepository.TaskTitleExists(ctx, carID, request.Title)
	if err != nil {
		return models.Task{}, err
	}
	if exists {
		return models.Task{}, store.ErrTaskTitleExists
	}

	return t.taskRepository.CreateTask(ctx, models.Task{
		CarID:                carID,
		Title:                request.Title,
		Description:          request.Description,
		EstimatedTimeMinutes: request.Time,
		Status:               models.TaskStatusPending,
		Completed:            false,
		SuggestionID:         request.SuggestionID,
	})
}

func (t *taskService) ListTasks(ctx context.Context, carID int64) ([]models.Task, error) {
	return t.taskRepository.ListTasks(ctx, carID)
}

// UpdateTaskStatus moves a task to the requested status. Any status may
// follow any other. The completed flag follows the status unless the
// request overrides it explicitly.
func (t *taskService) UpdateTaskStatus(ctx context.Context, taskID int64, request models.UpdateTaskStatusRequest) (models.Task, error) {
	if !request.Status.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidTaskStatus, request.Status)
	}

	completed := request.Status == models.TaskStatusCompleted
	if request.Completed != nil {
		completed = *request.Completed
	}

	return t.taskRepository.UpdateTaskStatus(ctx, taskID, request.Status, completed)
}

func (t *taskService) DeleteTask(ctx context.Context, taskID int64) error {
	return t.taskRepository.DeleteTask(ctx, taskID)
}

func validateTaskPayload(request models.CreateTaskRequest) error {
	if n := utf8.RuneCountInString(request.Title); n == 0 || n > taskTitleMaxLen {
		return fmt.Errorf("%w: title must be between 1 and %d characters", ErrInvalidTaskData, taskTitleMaxLen)
	}
	if request.Description != nil {
		if n := utf8.RuneCountInString(*request.Description); n > taskDescriptionMaxLen {
			return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidTaskData, taskDescriptionMaxLen)
		}
	}
	if request.Time <= 0 {
		return fmt.Errorf("%w: estimated time must be a positive number of minutes", ErrInvalidTaskData)
	}
	return nil
}
