package store

import (
	"context"
	"fmt"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/models"
)

// suggestionRepository is the PostgreSQL-backed implementation of
// [SuggestionRepository] over the "task_suggestions" table.
type suggestionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSuggestionRepository constructs a [SuggestionRepository] backed by the
// provided database connection and logger.
func NewSuggestionRepository(db *DB, logger *logger.Logger) SuggestionRepository {
	logger.Debug().Msg("creating suggestion repository")
	return &suggestionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSuggestions bulk-inserts the given suggestions inside a single
// transaction: either every suggestion
// row lands or none does. Each INSERT returns its row via RETURNING; the
// persisted rows are handed back in insert order.
//
// An empty batch yields [ErrSuggestionsNotSaved] — the generator contract
// guarantees a non-empty list, so an empty one indicates a caller bug.
func (r *suggestionRepository) SaveSuggestions(ctx context.Context, suggestions []models.TaskSuggestion) ([]models.TaskSuggestion, error) {
	log := logger.FromContext(ctx)

	if len(suggestions) == 0 {
		return nil, ErrSuggestionsNotSaved
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*suggestionRepository.SaveSuggestions").Msg("error: beginning transaction failed")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	saved := make([]models.TaskSuggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		row := tx.QueryRowContext(ctx, createSuggestion, suggestion.CarID, suggestion.Title, suggestion.Description, suggestion.TimeUse)

		var inserted models.TaskSuggestion
		if err := row.Scan(&inserted.ID, &inserted.CarID, &inserted.Title, &inserted.Description, &inserted.TimeUse); err != nil {
			log.Err(err).
				Str("func", "*suggestionRepository.SaveSuggestions").
				Stringer("classification", r.db.errorClassificator.Classify(err)).
				Msg("error: suggestion insert failed")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}

		saved = append(saved, inserted)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*suggestionRepository.SaveSuggestions").Msg("error: committing transaction failed")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return saved, nil
}

// ListSuggestions returns every suggestion belonging to the car, ordered by id.
func (r *suggestionRepository) ListSuggestions(ctx context.Context, carID int64) ([]models.TaskSuggestion, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getSuggestionsByCarID, carID)
	if err != nil {
		log.Err(err).Str("func", "*suggestionRepository.ListSuggestions").Msg("error: suggestions query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	suggestions := make([]models.TaskSuggestion, 0)
	for rows.Next() {
		var suggestion models.TaskSuggestion
		if err := rows.Scan(&suggestion.ID, &suggestion.CarID, &suggestion.Title, &suggestion.Description, &suggestion.TimeUse); err != nil {
			log.Err(err).Str("func", "*suggestionRepository.ListSuggestions").Msg("error: scanning error")
			return nil, err
		}
		suggestions = append(suggestions, suggestion)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*suggestionRepository.ListSuggestions").Msg("error: rows iteration failed")
		return nil, err
	}

	return suggestions, nil
}

// DeleteSuggestion removes a suggestion by id; zero affected rows →
// [ErrSuggestionNotFound].
func (r *suggestionRepository) DeleteSuggestion(ctx context.Context, suggestionID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSuggestionByID, suggestionID)
	if err != nil {
		log.Err(err).Str("func", "*suggestionRepository.DeleteSuggestion").Msg("error: suggestion delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*suggestionRepository.DeleteSuggestion").Msg("error: rows affected unavailable")
		return err
	}

	if affected == 0 {
		log.Debug().Int64("suggestion_id", suggestionID).Msg("suggestion was not found")
		return ErrSuggestionNotFound
	}

	return nil
}
