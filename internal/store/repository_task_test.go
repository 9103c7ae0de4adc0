package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/models"
	"github.com/jackc/pgerrcode"
)

func newTestTaskRepo(t *testing.T) (*taskRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &taskRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

var taskTestColumns = []string{"id", "car_id", "title", "description", "estimated_time_minutes", "status", "completed", "suggestion_id", "created_at"}

func TestCreateTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	ctx := context.Background()
	task := models.Task{
		CarID:                1,
		Title:                "Oljeskift og filterbytte",
		Description:          strPtr("Anbefales hvert 15 000 km eller årlig"),
		EstimatedTimeMinutes: 10,
		Status:               models.TaskStatusPending,
		Completed:            false,
	}

	now := time.Now()
	rows := sqlmock.NewRows(taskTestColumns).
		AddRow(21, 1, task.Title, *task.Description, 10, "pending", false, nil, now)

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(task.CarID, task.Title, task.Description, task.EstimatedTimeMinutes, task.Status, task.Completed, task.SuggestionID).
		WillReturnRows(rows)

	created, err := repo.CreateTask(ctx, task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 21 {
		t.Errorf("expected ID=21, got %d", created.ID)
	}
	if created.Status != models.TaskStatusPending {
		t.Errorf("expected pending status, got %s", created.Status)
	}
	if created.Completed {
		t.Error("expected completed=false")
	}
}

func TestCreateTask_DuplicateTitle(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO tasks").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateTask(context.Background(), models.Task{CarID: 1, Title: "Bremsesjekk"})
	if !errors.Is(err, ErrTaskTitleExists) {
		t.Fatalf("expected ErrTaskTitleExists, got %v", err)
	}
}

func TestCreateTask_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO tasks").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateTask(context.Background(), models.Task{CarID: 1, Title: "Bremsesjekk"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestListTasks_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(taskTestColumns).
		AddRow(1, 5, "Bremsesjekk", nil, 20, "pending", false, nil, now).
		AddRow(2, 5, "Oljeskift og filterbytte", "Anbefales hvert 15 000 km eller årlig", 10, "completed", true, 11, now)

	mock.ExpectQuery("SELECT id, car_id").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	tasks, err := repo.ListTasks(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[1].SuggestionID == nil || *tasks[1].SuggestionID != 11 {
		t.Errorf("expected suggestion id 11, got %v", tasks[1].SuggestionID)
	}
}

func TestTaskTitleExists(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(5), "Bremsesjekk").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.TaskTitleExists(context.Background(), 5, "Bremsesjekk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected title to exist")
	}
}

func TestUpdateTaskStatus_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(taskTestColumns).
		AddRow(21, 1, "Bremsesjekk", nil, 20, "completed", true, nil, now)

	// squirrel builds: UPDATE tasks SET status = $1, completed = $2 WHERE id = $3
	mock.ExpectQuery("UPDATE tasks").
		WithArgs("completed", true, int64(21)).
		WillReturnRows(rows)

	updated, err := repo.UpdateTaskStatus(context.Background(), 21, models.TaskStatusCompleted, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.TaskStatusCompleted {
		t.Errorf("expected completed status, got %s", updated.Status)
	}
	if !updated.Completed {
		t.Error("expected completed=true")
	}
}

func TestUpdateTaskStatus_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE tasks").
		WithArgs("pending", false, int64(404)).
		WillReturnRows(sqlmock.NewRows(taskTestColumns))

	_, err := repo.UpdateTaskStatus(context.Background(), 404, models.TaskStatusPending, false)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTask_Success(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(21)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTask(context.Background(), 21); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	repo, mock, db := newTestTaskRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTask(context.Background(), 404)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
