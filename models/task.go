package models

import "time"

// TaskStatus is the progress state of a maintenance task. The enum is
// free-form: a task may move from any status to any other, there is no
// enforced ordering between the states.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is an actionable maintenance task for a car, created either from
// scratch or by promoting a [TaskSuggestion]. Titles are unique per car.
type Task struct {
	// ID is the internal unique identifier of the task.
	ID int64 `json:"id"`

	// CarID references the owning car.
	CarID int64 `json:"car_id"`

	// Title is the task name, unique among the tasks of one car.
	Title string `json:"title"`

	// Description is an optional longer explanation of the task.
	Description *string `json:"description"`

	// EstimatedTimeMinutes is the expected time to complete the task.
	EstimatedTimeMinutes int `json:"estimated_time_minutes"`

	// Status is the current progress state. New tasks always start as
	// [TaskStatusPending].
	Status TaskStatus `json:"status"`

	// Completed mirrors Status == TaskStatusCompleted. The column is stored
	// redundantly for the wire contract; UpdateTaskStatus derives it from
	// the status whenever the caller does not override it explicitly.
	Completed bool `json:"completed"`

	// SuggestionID references the suggestion the task was promoted from,
	// nil for tasks created from scratch.
	SuggestionID *int64 `json:"suggestion_id"`

	// CreatedAt is the timestamp when the task was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}
