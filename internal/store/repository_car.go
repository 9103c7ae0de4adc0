package store

import (
	"context"
	"fmt"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/models"
	"github.com/jackc/pgerrcode"
)

// carRepository is the PostgreSQL-backed implementation of [CarRepository].
// It handles car registration, lookup and deletion against the "cars" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type carRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCarRepository constructs a [CarRepository] backed by the provided
// database connection and logger.
func NewCarRepository(db *DB, logger *logger.Logger) CarRepository {
	logger.Debug().Msg("creating car repository")
	return &carRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCar persists a new car record and returns the fully populated
// [models.Car] with server-assigned fields (ID, CreatedAt).
//
// The INSERT uses the [createCar] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly registered car.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrRegNrExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *carRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCar, car.RegNr, car.Make, car.Model, car.Year, car.Color)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*carRepository.CreateCar").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: car insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Car{}, ErrRegNrExists
		default:
			return models.Car{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved car from db
	if err := row.Scan(&car.ID, &car.RegNr, &car.Make, &car.Model, &car.Year, &car.Color, &car.CreatedAt); err != nil {
		log.Err(err).Str("func", "*carRepository.CreateCar").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Car{}, ErrRegNrExists
		default:
			return models.Car{}, err
		}
	}

	return car, nil
}

// GetCar retrieves a car by its id.
//
// Error handling:
//   - No matching row → [ErrCarNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *carRepository) GetCar(ctx context.Context, carID int64) (models.Car, error) {
	log := logger.FromContext(ctx)

	var car models.Car
	row := r.db.QueryRowContext(ctx, getCarByID, carID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*carRepository.GetCar").Msg("error: car lookup failed")
		return models.Car{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&car.ID, &car.RegNr, &car.Make, &car.Model, &car.Year, &car.Color, &car.CreatedAt); err != nil {
		if isNoRows(err) {
			log.Debug().Int64("car_id", carID).Msg("car was not found")
			return models.Car{}, ErrCarNotFound
		}
		log.Err(err).Str("func", "*carRepository.GetCar").Msg("error: scanning error")
		return models.Car{}, err
	}

	return car, nil
}

// ListCars returns every registered car ordered by id.
func (r *carRepository) ListCars(ctx context.Context) ([]models.Car, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllCars)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.ListCars").Msg("error: cars query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	cars := make([]models.Car, 0)
	for rows.Next() {
		var car models.Car
		if err := rows.Scan(&car.ID, &car.RegNr, &car.Make, &car.Model, &car.Year, &car.Color, &car.CreatedAt); err != nil {
			log.Err(err).Str("func", "*carRepository.ListCars").Msg("error: scanning error")
			return nil, err
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*carRepository.ListCars").Msg("error: rows iteration failed")
		return nil, err
	}

	return cars, nil
}

// DeleteCar removes a car by id. The affected-row count distinguishes a
// successful delete from a miss: zero rows → [ErrCarNotFound]. Dependent
// suggestion and task rows are removed by the ON DELETE CASCADE constraints.
func (r *carRepository) DeleteCar(ctx context.Context, carID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCarByID, carID)
	if err != nil {
		log.Err(err).
			Str("func", "*carRepository.DeleteCar").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: car delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*carRepository.DeleteCar").Msg("error: rows affected unavailable")
		return err
	}

	if affected == 0 {
		log.Debug().Int64("car_id", carID).Msg("car was not found")
		return ErrCarNotFound
	}

	return nil
}
