package models

import "time"

// UnknownAttribute is the sentinel stored for any vehicle attribute the
// national registry could not resolve ("ukjent" — Norwegian for "unknown").
// Enrichment failures never block car registration; the car is simply
// persisted with sentinel attributes.
const UnknownAttribute = "UKJENT"

// Car represents a registered vehicle tracked by the maintenance register.
// Make, model, year and color are populated from the Statens vegvesen
// registry at registration time; when the lookup fails every attribute
// falls back to [UnknownAttribute] (year falls back to 0).
type Car struct {
	// ID is the internal unique identifier of the car, assigned by the
	// database on insert.
	ID int64 `json:"id"`

	// RegNr is the vehicle's plate number: two letters followed by five
	// digits, stored upper-cased, unique across all cars.
	RegNr string `json:"reg_nr"`

	// Make is the vehicle manufacturer (e.g. "VOLVO").
	Make string `json:"make"`

	// Model is the trade designation of the vehicle (e.g. "V70").
	Model string `json:"model"`

	// Year is the year of the vehicle's first registration.
	// Zero when enrichment failed.
	Year int `json:"year"`

	// Color is the body color reported by the registry. May be nil when
	// the registry does not expose one.
	Color *string `json:"color"`

	// CreatedAt is the timestamp when the car was registered.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Car model.
func (c Car) TableName() string {
	return "cars"
}
