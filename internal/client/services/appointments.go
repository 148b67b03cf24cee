package services

import (
	"context"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

// AppointmentAPI is the slice of the api client the appointment service
// consumes. Mine carries the defensive empty-on-error contract, so no retry
// wrapping applies to it: a failed fetch already degrades to an empty list.
type AppointmentAPI interface {
	Book(ctx context.Context, doctorID string, req models.BookingRequest) (*models.Appointment, error)
	Mine(ctx context.Context) []models.Appointment
	Cancel(ctx context.Context, id string) error
	AvailableDoctors(ctx context.Context) ([]models.Provider, error)
	AppointmentDetails(ctx context.Context, id string) (*models.Appointment, error)
	DoctorSlots(ctx context.Context, doctorID, date string) ([]string, error)
}

// AppointmentService hosts the tab-bucket view of the patient's appointments.
type AppointmentService struct {
	api AppointmentAPI
}

func NewAppointmentService(api AppointmentAPI) *AppointmentService {
	return &AppointmentService{api: api}
}

// List returns every appointment of the logged-in patient. Never fails.
func (s *AppointmentService) List(ctx context.Context) []models.Appointment {
	return s.api.Mine(ctx)
}

// ListBucket returns the appointments of one UI tab. Statuses outside the
// known vocabulary appear in no bucket.
func (s *AppointmentService) ListBucket(ctx context.Context, b models.Bucket) []models.Appointment {
	return models.FilterByBucket(s.api.Mine(ctx), b)
}

func (s *AppointmentService) Book(ctx context.Context, doctorID string, req models.BookingRequest) (*models.Appointment, error) {
	return s.api.Book(ctx, doctorID, req)
}

func (s *AppointmentService) Cancel(ctx context.Context, id string) error {
	return s.api.Cancel(ctx, id)
}
