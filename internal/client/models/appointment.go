package models

import "strings"

// Doctor is the optional provider reference embedded in an appointment.
// Older backend builds used "specialty", newer ones "specialization".
type Doctor struct {
	Name           string `json:"name"`
	Specialty      string `json:"specialty"`
	Specialization string `json:"specialization"`
}

// DisplaySpecialty returns the specialty from whichever field is populated.
func (d *Doctor) DisplaySpecialty() string {
	if d.Specialty != "" {
		return d.Specialty
	}
	return d.Specialization
}

// Appointment is a read-only projection of a booking. Status transitions
// happen server-side; the client only ever sees the state current at fetch
// time.
type Appointment struct {
	ID        string  `json:"_id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Doctor    *Doctor `json:"doctor"`
	Type      string  `json:"type"`
	Duration  int     `json:"duration"`
	Notes     []any   `json:"notes"`
	MeetLink  string  `json:"meetLink"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// BookingRequest is the client-supplied part of an appointment-create body.
// The providerType discriminator is not here: the appointments module injects
// it and callers cannot override it.
type BookingRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	Notes    string `json:"notes,omitempty"`
}

// Bucket is the UI tab an appointment falls into based on its status string.
type Bucket int

const (
	// BucketNone holds appointments whose status is outside the known
	// vocabulary. They are invisible to all three tabs. Whether that is
	// intended or a latent bug is an open product question; the behavior is
	// preserved as-is.
	BucketNone Bucket = iota
	BucketUpcoming
	BucketPast
	BucketCancelled
)

func (b Bucket) String() string {
	switch b {
	case BucketUpcoming:
		return "upcoming"
	case BucketPast:
		return "past"
	case BucketCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Bucket classifies the appointment by matching its status case-insensitively
// against the fixed vocabulary: confirmed and pending are upcoming, completed
// is past, and both spellings of cancelled count as cancelled.
func (a *Appointment) Bucket() Bucket {
	switch strings.ToLower(a.Status) {
	case "confirmed", "pending":
		return BucketUpcoming
	case "completed":
		return BucketPast
	case "cancelled", "canceled":
		return BucketCancelled
	default:
		return BucketNone
	}
}

// FilterByBucket returns the appointments that fall into the given bucket.
func FilterByBucket(list []Appointment, b Bucket) []Appointment {
	out := make([]Appointment, 0, len(list))
	for _, a := range list {
		if a.Bucket() == b {
			out = append(out, a)
		}
	}
	return out
}
