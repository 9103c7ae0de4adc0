package models

// TaskSuggestion is an AI-generated candidate maintenance task tied to a
// single car. Suggestions are inserted in batches by the suggestion
// generator, never mutated, and either rejected (deleted individually) or
// promoted into a [Task] by the caller. Promotion does not delete the
// suggestion row; the two operations are sequenced by the client.
type TaskSuggestion struct {
	// ID is the internal unique identifier of the suggestion.
	ID int64 `json:"id"`

	// CarID references the car the suggestion was generated for.
	CarID int64 `json:"car_id"`

	// Title is a short name of the proposed maintenance task.
	Title string `json:"title"`

	// Description is an optional longer explanation of the task.
	Description *string `json:"description"`

	// TimeUse is the estimated time to complete the task, in minutes.
	TimeUse int `json:"time_use"`
}

// TableName returns the name of the database table
// associated with the TaskSuggestion model.
func (s TaskSuggestion) TableName() string {
	return "task_suggestions"
}
