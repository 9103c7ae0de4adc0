package service

import (
	"context"
	"testing"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/internal/mock"
	"github.com/bilhold/bilhold/internal/store"
	"github.com/bilhold/bilhold/internal/suggest"
	"github.com/bilhold/bilhold/internal/vegvesen"
	"github.com/bilhold/bilhold/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestMaintenanceLifecycle walks the full register → suggest → promote →
// complete → delete flow with a failing registry and a failing generator,
// checking the degraded-path guarantees end to end.
func TestMaintenanceLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCars := mock.NewMockCarRepository(ctrl)
	mockSuggestions := mock.NewMockSuggestionRepository(ctrl)
	mockTasks := mock.NewMockTaskRepository(ctrl)
	mockRegistry := mock.NewMockVehicleRegistry(ctrl)
	mockGenerator := mock.NewMockSuggestionGenerator(ctrl)

	log := logger.Nop()
	carSvc := NewCarService(mockCars, mockRegistry, log)
	suggestionSvc := NewSuggestionService(mockSuggestions, mockCars, mockGenerator, log)
	taskSvc := NewTaskService(mockTasks, log)

	ctx := context.Background()

	// register "AB12345" while the registry is down
	mockRegistry.EXPECT().LookupVehicle(ctx, "AB12345").
		Return(vegvesen.VehicleAttributes{}, vegvesen.ErrRegistryUnavailable)
	mockCars.EXPECT().CreateCar(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, car models.Car) (models.Car, error) {
			car.ID = 1
			return car, nil
		},
	)

	car, err := carSvc.RegisterCar(ctx, models.RegisterCarRequest{RegNr: "AB12345"})
	require.NoError(t, err)
	assert.Equal(t, "AB12345", car.RegNr)
	assert.Equal(t, models.UnknownAttribute, car.Make)
	assert.Equal(t, 0, car.Year)

	// fetch suggestions while the generator's upstream is down: the
	// fallback list comes back and is persisted
	mockCars.EXPECT().GetCar(ctx, int64(1)).Return(car, nil)
	mockGenerator.EXPECT().GenerateSuggestions(ctx, gomock.Any()).Return(suggest.FallbackSuggestions())
	mockSuggestions.EXPECT().SaveSuggestions(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, suggestions []models.TaskSuggestion) ([]models.TaskSuggestion, error) {
			for i := range suggestions {
				suggestions[i].ID = int64(i + 1)
			}
			return suggestions, nil
		},
	)

	suggestions, err := suggestionSvc.FetchAISuggestions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, suggestions, 3)
	assert.Equal(t, "Oljeskift og filterbytte", suggestions[0].Title)

	// promote the first fallback suggestion into a task
	first := suggestions[0]
	mockTasks.EXPECT().TaskTitleExists(ctx, int64(1), first.Title).Return(false, nil)
	mockTasks.EXPECT().CreateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			task.ID = 10
			return task, nil
		},
	)

	task, err := taskSvc.CreateTask(ctx, 1, models.CreateTaskRequest{
		Title:        first.Title,
		Description:  first.Description,
		Time:         first.TimeUse,
		SuggestionID: &first.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.False(t, task.Completed)
	assert.Equal(t, 10, task.EstimatedTimeMinutes)

	// complete the task; the flag follows the status
	mockTasks.EXPECT().UpdateTaskStatus(ctx, int64(10), models.TaskStatusCompleted, true).
		Return(models.Task{ID: 10, Status: models.TaskStatusCompleted, Completed: true}, nil)

	updated, err := taskSvc.UpdateTaskStatus(ctx, 10, models.UpdateTaskStatusRequest{Status: models.TaskStatusCompleted})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	// delete once, then again: the second delete finds nothing
	gomock.InOrder(
		mockTasks.EXPECT().DeleteTask(ctx, int64(10)).Return(nil),
		mockTasks.EXPECT().DeleteTask(ctx, int64(10)).Return(store.ErrTaskNotFound),
	)

	require.NoError(t, taskSvc.DeleteTask(ctx, 10))
	assert.ErrorIs(t, taskSvc.DeleteTask(ctx, 10), store.ErrTaskNotFound)
}
