package service

import "errors"

var (
	// ErrInvalidRegNr is returned when the plate number does not match the
	// two-letters-five-digits format. Validation runs before any enrichment
	// or persistence call.
	ErrInvalidRegNr = errors.New("invalid registration number")

	// ErrInvalidTaskData is returned when a task payload fails validation:
	// empty or overlong title, overlong description, or a non-positive time
	// estimate.
	ErrInvalidTaskData = errors.New("invalid task data provided")

	// ErrInvalidTaskStatus is returned when a status update carries a value
	// outside the known task-status enum.
	ErrInvalidTaskStatus = errors.New("invalid task status provided")
)
