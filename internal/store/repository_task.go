package store

import (
	"context"
	"fmt"

	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/models"
	"github.com/jackc/pgerrcode"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository]
// over the "tasks" table.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task record and returns the fully populated
// [models.Task] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on (car_id, title) → [ErrTaskTitleExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask,
		task.CarID, task.Title, task.Description, task.EstimatedTimeMinutes, task.Status, task.Completed, task.SuggestionID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Stringer("classification", r.db.errorClassificator.Classify(err)).
			Msg("error: task insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Task{}, ErrTaskTitleExists
		default:
			return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&task.ID, &task.CarID, &task.Title, &task.Description, &task.EstimatedTimeMinutes,
		&task.Status, &task.Completed, &task.SuggestionID, &task.CreatedAt); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Task{}, ErrTaskTitleExists
		default:
			return models.Task{}, err
		}
	}

	return task, nil
}

// ListTasks returns every task belonging to the car, ordered by id.
// The query is built with squirrel — see [buildListTasks].
func (r *taskRepository) ListTasks(ctx context.Context, carID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasks(carID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error building sql query")
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error: tasks query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.CarID, &task.Title, &task.Description, &task.EstimatedTimeMinutes,
			&task.Status, &task.Completed, &task.SuggestionID, &task.CreatedAt); err != nil {
			log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error: scanning error")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error: rows iteration failed")
		return nil, err
	}

	return tasks, nil
}

// TaskTitleExists reports whether the car already has a task with the exact
// given title. Used by the service layer for the friendly pre-check; the
// unique constraint remains the authoritative guard.
func (r *taskRepository) TaskTitleExists(ctx context.Context, carID int64, title string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, taskTitleExists, carID, title)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*taskRepository.TaskTitleExists").Msg("error: existence check failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}

// UpdateTaskStatus sets the status and completed flag of a task and returns
// the updated row. The caller is responsible for deriving the completed flag
// from the status; this method writes exactly what it is given.
//
// The UPDATE is built with squirrel — see [buildUpdateTaskStatus]. A missing
// row surfaces as [ErrTaskNotFound] via the empty RETURNING result.
func (r *taskRepository) UpdateTaskStatus(ctx context.Context, taskID int64, status models.TaskStatus, completed bool) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskStatus(taskID, status, completed)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTaskStatus").Msg("error building sql query")
		return models.Task{}, fmt.Errorf("error building sql query: %w", err)
	}

	var task models.Task
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&task.ID, &task.CarID, &task.Title, &task.Description, &task.EstimatedTimeMinutes,
		&task.Status, &task.Completed, &task.SuggestionID, &task.CreatedAt); err != nil {
		if isNoRows(err) {
			log.Debug().Int64("task_id", taskID).Msg("task was not found")
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.UpdateTaskStatus").Msg("error: task update failed")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task by id; zero affected rows → [ErrTaskNotFound].
func (r *taskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTaskByID, taskID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: task delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error: rows affected unavailable")
		return err
	}

	if affected == 0 {
		log.Debug().Int64("task_id", taskID).Msg("task was not found")
		return ErrTaskNotFound
	}

	return nil
}
