package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/oncall-app/oncall-cli/internal/client/models"
	"github.com/oncall-app/oncall-cli/internal/common"
)

// Book creates an appointment with the given doctor. The request body always
// carries providerType "doctor" — the backend routes create requests to the
// doctor/lab/physio handler by this field, so it is injected here and callers
// cannot override it.
func (c *Client) Book(ctx context.Context, doctorID string, req models.BookingRequest) (*models.Appointment, error) {
	body := struct {
		models.BookingRequest
		ProviderType string `json:"providerType"`
	}{req, common.ProviderTypeDoctor}

	var appt models.Appointment
	err := c.do(ctx, http.MethodPost, "/appointments/create/"+url.PathEscape(doctorID), body, &appt, "failed to book appointment")
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// Mine fetches the caller's appointments. Unlike most calls this one never
// fails: any error yields an empty list. Screens poll it on every visit and
// are expected to render an empty state rather than an error banner.
func (c *Client) Mine(ctx context.Context) []models.Appointment {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/appointments/patient", nil, &raw, "failed to fetch appointments"); err != nil {
		c.log.Warn(ctx, "appointments fetch failed, returning empty list", "error", err)
		return []models.Appointment{}
	}
	return decodeAppointmentList(raw)
}

// Cancel deletes an appointment by id.
func (c *Client) Cancel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/appointments/"+url.PathEscape(id), nil, nil, "failed to cancel appointment")
}

// AvailableDoctors is a placeholder: the backend exposes no such endpoint
// yet. It performs no network call and always returns an empty list.
func (c *Client) AvailableDoctors(ctx context.Context) ([]models.Provider, error) {
	return []models.Provider{}, nil
}

// AppointmentDetails is a placeholder: the backend exposes no such endpoint
// yet. It performs no network call and always returns nil.
func (c *Client) AppointmentDetails(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}

// DoctorSlots is a placeholder: the backend exposes no such endpoint yet.
// It performs no network call and always returns an empty list.
func (c *Client) DoctorSlots(ctx context.Context, doctorID, date string) ([]string, error) {
	return []string{}, nil
}

// decodeAppointmentList accepts both response shapes the backend has been
// observed to produce: a bare array, or an object wrapping the array in an
// "appointments"/"Appointments" field. Anything else decodes to empty.
func decodeAppointmentList(raw json.RawMessage) []models.Appointment {
	var list []models.Appointment
	if json.Unmarshal(raw, &list) == nil && list != nil {
		return list
	}

	var wrapper struct {
		Appointments []models.Appointment `json:"appointments"`
	}
	if json.Unmarshal(raw, &wrapper) == nil && wrapper.Appointments != nil {
		return wrapper.Appointments
	}

	return []models.Appointment{}
}
