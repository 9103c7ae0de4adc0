package vegvesen

import "errors"

// Sentinel errors returned by [Client.LookupVehicle]. Callers match with
// [errors.Is]; both indicate enrichment failure and are never surfaced to
// the car-registration caller — the service substitutes sentinel attributes
// instead.
var (
	// ErrRegistryUnavailable is returned when the registry cannot be reached
	// or responds with a non-success HTTP status.
	ErrRegistryUnavailable = errors.New("vehicle registry unavailable")

	// ErrVehicleNotFound is returned when the registry response carries no
	// vehicle entry for the requested plate number.
	ErrVehicleNotFound = errors.New("vehicle not found in registry")
)
