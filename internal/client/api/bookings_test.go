package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

func TestAllBookings_DecodesList(t *testing.T) {
	c := newTestClient(t, &fakeSession{token: "abc"}, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bookings", r.URL.Path)
		w.Write([]byte(`[{"_id":"b1","status":"pending"}]`))
	})

	got, err := c.AllBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
}

func TestPatientBookings_EmptyOnFailure(t *testing.T) {
	c := New("http://127.0.0.1:1", time.Second, &fakeSession{}, discardLogger())

	got := c.PatientBookings(context.Background())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProviderBookings_ErrorsPropagate(t *testing.T) {
	c := newTestClient(t, &fakeSession{token: "abc"}, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bookings/provider", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"providers only"}`))
	})

	_, err := c.ProviderBookings(context.Background())
	require.Error(t, err)
	assert.Equal(t, "providers only", err.Error())
}

func TestCreateBooking_PostsToProviderPath(t *testing.T) {
	var path string
	var body map[string]any
	c := newTestClient(t, &fakeSession{token: "abc"}, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"_id":"b1"}`))
	})

	b, err := c.CreateBooking(context.Background(), "lab-7", models.BookingRequest{Date: "2026-09-20", Time: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, "/bookings/lab-7", path)
	assert.Equal(t, "2026-09-20", body["date"])
	// the generic bookings resource carries no doctor discriminator
	_, hasDiscriminator := body["providerType"]
	assert.False(t, hasDiscriminator)
}

func TestUpdateBookingFields_SingleFieldBodies(t *testing.T) {
	type call struct {
		run  func(c *Client) error
		path string
		body map[string]any
	}

	calls := []call{
		{
			run:  func(c *Client) error { return c.UpdateBookingDate(context.Background(), "b1", "2026-10-01") },
			path: "/bookings/b1/date",
			body: map[string]any{"date": "2026-10-01"},
		},
		{
			run:  func(c *Client) error { return c.UpdateBookingTime(context.Background(), "b1", "14:00") },
			path: "/bookings/b1/time",
			body: map[string]any{"time": "14:00"},
		},
		{
			run:  func(c *Client) error { return c.UpdateBookingStatus(context.Background(), "b1", "confirmed") },
			path: "/bookings/b1/status",
			body: map[string]any{"status": "confirmed"},
		},
	}

	for _, tc := range calls {
		t.Run(tc.path, func(t *testing.T) {
			var method, path string
			var body map[string]any
			c := newTestClient(t, &fakeSession{token: "abc"}, func(w http.ResponseWriter, r *http.Request) {
				method, path = r.Method, r.URL.Path
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				w.Write([]byte(`{}`))
			})

			require.NoError(t, tc.run(c))
			assert.Equal(t, http.MethodPut, method)
			assert.Equal(t, tc.path, path)
			assert.Equal(t, tc.body, body)
		})
	}
}

func TestDeleteBooking(t *testing.T) {
	var method, path string
	c := newTestClient(t, &fakeSession{token: "abc"}, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteBooking(context.Background(), "b1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/bookings/b1", path)
}
