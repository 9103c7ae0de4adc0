package store

import (
	"testing"

	"github.com/bilhold/bilhold/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdateTaskStatus(t *testing.T) {
	query, args, err := buildUpdateTaskStatus(21, models.TaskStatusCompleted, true)
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE tasks SET status = $1, completed = $2 WHERE id = $3 "+
			"RETURNING id, car_id, title, description, estimated_time_minutes, status, completed, suggestion_id, created_at",
		query)
	assert.Equal(t, []any{"completed", true, int64(21)}, args)
}

func TestBuildListTasks(t *testing.T) {
	query, args, err := buildListTasks(5)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, car_id, title, description, estimated_time_minutes, status, completed, suggestion_id, created_at "+
			"FROM tasks WHERE car_id = $1 ORDER BY id",
		query)
	assert.Equal(t, []any{int64(5)}, args)
}
