// Package vegvesen implements the lookup client for the national vehicle
// registry. Given a plate number it returns the vehicle's technical and
// registration attributes, or a typed error when the registry is unreachable
// or knows no such vehicle.
//
// The client never substitutes sentinel values: it hands back exactly what
// the registry reported (empty fields included) or fails. The UKJENT/0
// fallback policy lives in the car service, at the call site, so it stays
// visible and testable.
package vegvesen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bilhold/bilhold/internal/config"
	"github.com/bilhold/bilhold/internal/logger"
	"github.com/go-resty/resty/v2"
)

// VehicleAttributes is the normalized shape of one registry entry.
type VehicleAttributes struct {
	// Make is the manufacturer reported by the registry ("merke").
	Make string

	// Model is the trade designation ("handelsbetegnelse").
	Model string

	// Year is derived from the first-registration date
	// ("forstegangsregistrering"): the leading digit run of the date string,
	// 0 when the registry reported no date.
	Year int

	// Color is the body color ("karosseri.farge"), empty when not reported.
	Color string
}

// Client performs plate-number lookups against the registry endpoint.
type Client struct {
	client *resty.Client
	logger *logger.Logger
}

// NewClient constructs a registry lookup client from cfg.
func NewClient(cfg config.Vegvesen, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &Client{client: cli, logger: log}
}

// registryResponse mirrors the registry payload: either an object holding a
// "kjoretoy" array, or a single vehicle entry at the top level.
type registryResponse struct {
	Kjoretoy []vehicleEntry `json:"kjoretoy"`
}

type vehicleEntry struct {
	TekniskKjoretoy struct {
		Merke             string `json:"merke"`
		Handelsbetegnelse string `json:"handelsbetegnelse"`
		Karosseri         struct {
			Farge string `json:"farge"`
		} `json:"karosseri"`
	} `json:"tekniskKjoretoy"`
	Registrering struct {
		Forstegangsregistrering string `json:"forstegangsregistrering"`
	} `json:"registrering"`
}

func (e vehicleEntry) empty() bool {
	return e.TekniskKjoretoy.Merke == "" &&
		e.TekniskKjoretoy.Handelsbetegnelse == "" &&
		e.Registrering.Forstegangsregistrering == ""
}

// LookupVehicle fetches the registry entry for the given plate number.
// The plate is trimmed and upper-cased before the request is built.
//
// Error handling:
//   - transport failure or non-2xx registry status → [ErrRegistryUnavailable];
//   - undecodable body or no vehicle entry in it → [ErrVehicleNotFound].
//
// The call is never retried and nothing is cached.
func (c *Client) LookupVehicle(ctx context.Context, regNr string) (VehicleAttributes, error) {
	log := logger.FromContext(ctx)

	plate := strings.ToUpper(strings.TrimSpace(regNr))

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/" + plate)
	if err != nil {
		log.Err(err).Str("reg_nr", plate).Msg("vehicle registry request failed")
		return VehicleAttributes{}, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		log.Warn().Str("reg_nr", plate).Int("status", resp.StatusCode()).Msg("vehicle registry responded with non-success status")
		return VehicleAttributes{}, fmt.Errorf("%w: registry responded with status %d", ErrRegistryUnavailable, resp.StatusCode())
	}

	entry, err := decodeVehicleEntry(resp.Body())
	if err != nil {
		log.Warn().Err(err).Str("reg_nr", plate).Msg("no vehicle found in registry response")
		return VehicleAttributes{}, fmt.Errorf("%w: no vehicle found with registration number %s", ErrVehicleNotFound, plate)
	}

	return VehicleAttributes{
		Make:  entry.TekniskKjoretoy.Merke,
		Model: entry.TekniskKjoretoy.Handelsbetegnelse,
		Year:  yearFromRegistrationDate(entry.Registrering.Forstegangsregistrering),
		Color: entry.TekniskKjoretoy.Karosseri.Farge,
	}, nil
}

// decodeVehicleEntry extracts the first vehicle entry from the response
// body, accepting both the array-carrying wrapper and a bare entry object.
func decodeVehicleEntry(body []byte) (vehicleEntry, error) {
	var wrapped registryResponse
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Kjoretoy) > 0 {
		return wrapped.Kjoretoy[0], nil
	}

	var single vehicleEntry
	if err := json.Unmarshal(body, &single); err != nil {
		return vehicleEntry{}, err
	}
	if single.empty() {
		return vehicleEntry{}, fmt.Errorf("response carries no vehicle entry")
	}

	return single, nil
}

// yearFromRegistrationDate parses the leading digit run of the
// first-registration date string ("2015-06-17" → 2015). Returns 0 when the
// string starts with no digit.
func yearFromRegistrationDate(date string) int {
	year := 0
	for _, r := range date {
		if r < '0' || r > '9' {
			break
		}
		year = year*10 + int(r-'0')
	}
	return year
}
