package models

// RegisterCarRequest is the payload for the car-registration operation.
// Only the plate number is supplied; every other car attribute is resolved
// from the vehicle registry (or falls back to sentinels).
type RegisterCarRequest struct {
	// RegNr is the plate number, case-insensitive on input.
	RegNr string `json:"reg_nr"`
}

// CreateTaskRequest is the payload for the task-creation operation.
type CreateTaskRequest struct {
	// Title is the task name, 1–100 characters, unique per car.
	Title string `json:"title"`

	// Description optionally explains the task, at most 500 characters.
	Description *string `json:"description"`

	// Time is the estimated time use in minutes, must be positive.
	Time int `json:"time"`

	// SuggestionID optionally references the suggestion being promoted.
	// Title, description and time estimate are supplied by the caller
	// (copied from the suggestion client-side), the reference is recorded
	// for traceability only.
	SuggestionID *int64 `json:"suggestion_id"`
}

// UpdateTaskStatusRequest is the payload for the status-update operation.
type UpdateTaskStatusRequest struct {
	// Status is the new progress state; must be a known [TaskStatus].
	Status TaskStatus `json:"status"`

	// Completed optionally overrides the derived completion flag.
	// When nil the flag is derived as Status == TaskStatusCompleted.
	Completed *bool `json:"completed"`
}
