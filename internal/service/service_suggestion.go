package service

import (
	"context"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/internal/store"
	"github.com/bilhold/bilhold/internal/suggest"
	"github.com/bilhold/bilhold/models"
)

type suggestionService struct {
	suggestionRepository store.SuggestionRepository
	carRepository        store.CarRepository
	generator            SuggestionGenerator

	logger *logger.Logger
}

func NewSuggestionService(suggestionRepository store.SuggestionRepository, carRepository store.CarRepository, generator SuggestionGenerator, logger *logger.Logger) SuggestionService {
	return &suggestionService{
		suggestionRepository: suggestionRepository,
		carRepository:        carRepository,
		generator:            generator,
		logger:               logger,
	}
}

func (s *suggestionService) ListSuggestions(ctx context.Context, carID int64) ([]models.TaskSuggestion, error) {
	return s.suggestionRepository.ListSuggestions(ctx, carID)
}

// FetchAISuggestions loads the car, asks the generator for suggestions and
// persists them as one batch. The generator cannot fail — on any upstream
// problem it serves its fixed fallback list — so the only failure modes
// here are an absent car and persistence errors.
func (s *suggestionService) FetchAISuggestions(ctx context.Context, carID int64) ([]models.TaskSuggestion, error) {
	car, err := s.carRepository.GetCar(ctx, carID)
	if err != nil {
		return nil, err
	}

	generated := s.generator.GenerateSuggestions(ctx, suggest.CarInfo{
		RegNr: car.RegNr,
		Make:  car.Make,
		Model: car.Model,
		Year:  car.Year,
	})

	suggestions := make([]models.TaskSuggestion, 0, len(generated))
	for _, g := range generated {
		suggestions = append(suggestions, models.TaskSuggestion{
			CarID:       car.ID,
			Title:       g.Title,
			Description: g.Description,
			TimeUse:     g.TimeUse,
		})
	}

	return s.suggestionRepository.SaveSuggestions(ctx, suggestions)
}

func (s *suggestionService) DeleteSuggestion(ctx context.Context, suggestionID int64) error {
	return s.suggestionRepository.DeleteSuggestion(ctx, suggestionID)
}
