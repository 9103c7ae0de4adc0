package vegvesen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bilhold/bilhold/internal/config"
	"github.com/bilhold/bilhold/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cli := NewClient(config.Vegvesen{BaseURL: srv.URL, Timeout: 2 * time.Second}, logger.Nop())
	return cli, srv
}

func TestLookupVehicle_ArrayBody(t *testing.T) {
	var gotPath, gotAccept string
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"kjoretoy": [{
				"tekniskKjoretoy": {
					"merke": "VOLVO",
					"handelsbetegnelse": "V70",
					"karosseri": {"farge": "ROD"}
				},
				"registrering": {"forstegangsregistrering": "2015-06-17"}
			}]
		}`))
	})

	attrs, err := cli.LookupVehicle(context.Background(), "  ab12345 ")
	require.NoError(t, err)

	assert.Equal(t, "/AB12345", gotPath, "plate must be trimmed and upper-cased in the request path")
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, VehicleAttributes{Make: "VOLVO", Model: "V70", Year: 2015, Color: "ROD"}, attrs)
}

func TestLookupVehicle_SingleObjectBody(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tekniskKjoretoy": {
				"merke": "TESLA",
				"handelsbetegnelse": "MODEL 3",
				"karosseri": {"farge": ""}
			},
			"registrering": {"forstegangsregistrering": "2021"}
		}`))
	})

	attrs, err := cli.LookupVehicle(context.Background(), "EL12345")
	require.NoError(t, err)
	assert.Equal(t, VehicleAttributes{Make: "TESLA", Model: "MODEL 3", Year: 2021, Color: ""}, attrs)
}

func TestLookupVehicle_EmptyKjoretoy(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kjoretoy": []}`))
	})

	_, err := cli.LookupVehicle(context.Background(), "AB12345")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestLookupVehicle_NonSuccessStatus(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := cli.LookupVehicle(context.Background(), "AB12345")
	assert.ErrorIs(t, err, ErrRegistryUnavailable)
}

func TestLookupVehicle_NotFoundStatus(t *testing.T) {
	cli, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such vehicle", http.StatusNotFound)
	})

	_, err := cli.LookupVehicle(context.Background(), "AB12345")
	assert.ErrorIs(t, err, ErrRegistryUnavailable)
}

func TestLookupVehicle_UnreachableRegistry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the lookup so the request fails at transport level

	cli := NewClient(config.Vegvesen{BaseURL: srv.URL, Timeout: time.Second}, logger.Nop())

	_, err := cli.LookupVehicle(context.Background(), "AB12345")
	assert.ErrorIs(t, err, ErrRegistryUnavailable)
}

func TestYearFromRegistrationDate(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2015-06-17", 2015},
		{"1999", 1999},
		{"", 0},
		{"ukjent", 0},
	}

	for _, tc := range tests {
		t.Run(tc.date, func(t *testing.T) {
			assert.Equal(t, tc.want, yearFromRegistrationDate(tc.date))
		})
	}
}
