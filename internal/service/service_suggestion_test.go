package service

import (
	"context"
	"testing"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/internal/mock"
	"github.com/bilhold/bilhold/internal/store"
	"github.com/bilhold/bilhold/internal/suggest"
	"github.com/bilhold/bilhold/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSuggestionService(t *testing.T, ctrl *gomock.Controller) (SuggestionService, *mock.MockSuggestionRepository, *mock.MockCarRepository, *mock.MockSuggestionGenerator) {
	t.Helper()
	mockSuggestions := mock.NewMockSuggestionRepository(ctrl)
	mockCars := mock.NewMockCarRepository(ctrl)
	mockGenerator := mock.NewMockSuggestionGenerator(ctrl)

	svc := NewSuggestionService(mockSuggestions, mockCars, mockGenerator, logger.Nop())
	return svc, mockSuggestions, mockCars, mockGenerator
}

func TestSuggestionService_FetchAISuggestions_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSuggestions, mockCars, mockGenerator := newTestSuggestionService(t, ctrl)
	ctx := context.Background()

	car := models.Car{ID: 7, RegNr: "AB12345", Make: "VOLVO", Model: "V70", Year: 2015}
	desc := "Registerreimen bør byttes ved 120 000 km"
	generated := []suggest.Suggestion{
		{Title: "Skift registerreim", Description: &desc, TimeUse: 240},
		{Title: "Rens EGR-ventil", Description: nil, TimeUse: 90},
	}

	gomock.InOrder(
		mockCars.EXPECT().GetCar(ctx, int64(7)).Return(car, nil),
		mockGenerator.EXPECT().GenerateSuggestions(ctx, suggest.CarInfo{
			RegNr: "AB12345", Make: "VOLVO", Model: "V70", Year: 2015,
		}).Return(generated),
		mockSuggestions.EXPECT().SaveSuggestions(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, suggestions []models.TaskSuggestion) ([]models.TaskSuggestion, error) {
				require.Len(t, suggestions, 2)
				for i, s := range suggestions {
					assert.Equal(t, int64(7), s.CarID)
					assert.Equal(t, generated[i].Title, s.Title)
					assert.Equal(t, generated[i].Description, s.Description)
					assert.Equal(t, generated[i].TimeUse, s.TimeUse)
					suggestions[i].ID = int64(100 + i)
				}
				return suggestions, nil
			},
		),
	)

	got, err := svc.FetchAISuggestions(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(100), got[0].ID)
	assert.Equal(t, int64(101), got[1].ID)
}

func TestSuggestionService_FetchAISuggestions_FallbackContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSuggestions, mockCars, mockGenerator := newTestSuggestionService(t, ctrl)
	ctx := context.Background()

	car := models.Car{ID: 3, RegNr: "AB12345", Make: models.UnknownAttribute, Model: models.UnknownAttribute}

	gomock.InOrder(
		mockCars.EXPECT().GetCar(ctx, int64(3)).Return(car, nil),
		mockGenerator.EXPECT().GenerateSuggestions(ctx, gomock.Any()).Return(suggest.FallbackSuggestions()),
		mockSuggestions.EXPECT().SaveSuggestions(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, suggestions []models.TaskSuggestion) ([]models.TaskSuggestion, error) {
				return suggestions, nil
			},
		),
	)

	got, err := svc.FetchAISuggestions(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Oljeskift og filterbytte", got[0].Title)
	assert.Equal(t, 10, got[0].TimeUse)
	assert.Equal(t, "Bremsesjekk", got[1].Title)
	assert.Equal(t, "Dekk og hjulstilling", got[2].Title)
	assert.Equal(t, 200, got[2].TimeUse)
}

func TestSuggestionService_FetchAISuggestions_CarNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the generator must not run for an absent car
	svc, _, mockCars, _ := newTestSuggestionService(t, ctrl)
	ctx := context.Background()

	mockCars.EXPECT().GetCar(ctx, int64(99)).Return(models.Car{}, store.ErrCarNotFound)

	_, err := svc.FetchAISuggestions(ctx, 99)
	assert.ErrorIs(t, err, store.ErrCarNotFound)
}

func TestSuggestionService_ListSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSuggestions, _, _ := newTestSuggestionService(t, ctrl)
	ctx := context.Background()

	suggestions := []models.TaskSuggestion{{ID: 1, CarID: 7, Title: "Bremsesjekk", TimeUse: 20}}
	mockSuggestions.EXPECT().ListSuggestions(ctx, int64(7)).Return(suggestions, nil)

	got, err := svc.ListSuggestions(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, suggestions, got)
}

func TestSuggestionService_DeleteSuggestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSuggestions, _, _ := newTestSuggestionService(t, ctrl)
	ctx := context.Background()

	mockSuggestions.EXPECT().DeleteSuggestion(ctx, int64(5)).Return(nil)
	require.NoError(t, svc.DeleteSuggestion(ctx, 5))

	mockSuggestions.EXPECT().DeleteSuggestion(ctx, int64(5)).Return(store.ErrSuggestionNotFound)
	assert.ErrorIs(t, svc.DeleteSuggestion(ctx, 5), store.ErrSuggestionNotFound)
}
