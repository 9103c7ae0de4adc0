package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/bilhold/bilhold/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($1-style placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var taskColumns = []string{
	"id",
	"car_id",
	"title",
	"description",
	"estimated_time_minutes",
	"status",
	"completed",
	"suggestion_id",
	"created_at",
}

// buildUpdateTaskStatus builds the partial task UPDATE: only status and the
// completed flag change, everything else is left untouched. The RETURNING
// clause hands back the full updated row so callers get the canonical
// database representation.
func buildUpdateTaskStatus(taskID int64, status models.TaskStatus, completed bool) (string, []any, error) {
	return psql.Update("tasks").
		Set("status", string(status)).
		Set("completed", completed).
		Where(sq.Eq{"id": taskID}).
		Suffix("RETURNING id, car_id, title, description, estimated_time_minutes, status, completed, suggestion_id, created_at").
		ToSql()
}

// buildListTasks builds the per-car task listing query.
func buildListTasks(carID int64) (string, []any, error) {
	return psql.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"car_id": carID}).
		OrderBy("id").
		ToSql()
}
