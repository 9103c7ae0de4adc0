package store

import (
	"context"

	"github.com/bilhold/bilhold/internal/config"
	"github.com/bilhold/bilhold/internal/logger"
)

// Repositories aggregates every repository backed by the shared database
// connection.
type Repositories struct {
	CarRepository        CarRepository
	SuggestionRepository SuggestionRepository
	TaskRepository       TaskRepository
}

// NewRepositories connects to PostgreSQL and constructs all repositories
// over the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, *DB, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, err
	}

	return &Repositories{
		CarRepository:        NewCarRepository(db, log),
		SuggestionRepository: NewSuggestionRepository(db, log),
		TaskRepository:       NewTaskRepository(db, log),
	}, db, nil
}
