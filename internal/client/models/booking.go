package models

// Booking is the generic booking record used by the provider-agnostic
// /bookings endpoints. Appointments are the doctor-specific view of the
// same data.
type Booking struct {
	ID       string `json:"_id"`
	Patient  string `json:"patient"`
	Provider string `json:"provider"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`
}
