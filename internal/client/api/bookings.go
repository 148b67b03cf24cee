package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

// AllBookings fetches every booking visible to the caller.
func (c *Client) AllBookings(ctx context.Context) ([]models.Booking, error) {
	var list []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &list, "failed to fetch bookings"); err != nil {
		return nil, err
	}
	return list, nil
}

// PatientBookings fetches the logged-in patient's bookings with the same
// defensive contract as Mine: errors yield an empty list, never a failure.
func (c *Client) PatientBookings(ctx context.Context) []models.Booking {
	var list []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &list, "failed to fetch bookings"); err != nil {
		c.log.Warn(ctx, "patient bookings fetch failed, returning empty list", "error", err)
		return []models.Booking{}
	}
	if list == nil {
		return []models.Booking{}
	}
	return list
}

// ProviderBookings fetches bookings for a logged-in healthcare provider.
func (c *Client) ProviderBookings(ctx context.Context) ([]models.Booking, error) {
	var list []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/provider", nil, &list, "failed to fetch provider bookings"); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateBooking books any provider kind through the generic bookings
// resource, as opposed to Book which is doctor-specific.
func (c *Client) CreateBooking(ctx context.Context, providerID string, req models.BookingRequest) (*models.Booking, error) {
	var b models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings/"+url.PathEscape(providerID), req, &b, "failed to create booking"); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBookingDate reschedules a booking's date. No client-side conflict
// guard exists: last write wins in request arrival order at the server.
func (c *Client) UpdateBookingDate(ctx context.Context, id, date string) error {
	body := struct {
		Date string `json:"date"`
	}{date}
	return c.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(id)+"/date", body, nil, "failed to update booking date")
}

// UpdateBookingTime reschedules a booking's time slot.
func (c *Client) UpdateBookingTime(ctx context.Context, id, t string) error {
	body := struct {
		Time string `json:"time"`
	}{t}
	return c.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(id)+"/time", body, nil, "failed to update booking time")
}

// UpdateBookingStatus sets a booking's status string.
func (c *Client) UpdateBookingStatus(ctx context.Context, id, status string) error {
	body := struct {
		Status string `json:"status"`
	}{status}
	return c.do(ctx, http.MethodPut, "/bookings/"+url.PathEscape(id)+"/status", body, nil, "failed to update booking status")
}

// DeleteBooking removes a booking by id.
func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id), nil, nil, "failed to delete booking")
}
