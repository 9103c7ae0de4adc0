package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRegNrExists is returned when registering a car fails because a car
	// with the same plate number already exists in the database.
	ErrRegNrExists = errors.New("car with this reg nr already exists")

	// ErrCarNotFound is returned when a lookup or delete targets a car id
	// that does not exist in the database.
	ErrCarNotFound = errors.New("car was not found")

	// ErrSuggestionNotFound is returned when a delete targets a task
	// suggestion id that does not exist in the database.
	ErrSuggestionNotFound = errors.New("task suggestion was not found")

	// ErrSuggestionsNotSaved is returned when a batch INSERT of suggestions
	// completes without a driver error but persists no rows.
	ErrSuggestionsNotSaved = errors.New("task suggestions were not saved")

	// ErrTaskNotFound is returned when an update or delete targets a task id
	// that does not exist in the database.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrTaskTitleExists is returned when inserting a task violates the
	// (car_id, title) uniqueness constraint. This is the canonical
	// duplicate-title signal; the service layer pre-check returns the same
	// value.
	ErrTaskTitleExists = errors.New("task with this title already exists for the car")
)
