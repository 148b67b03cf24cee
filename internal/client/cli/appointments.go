package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/oncall-app/oncall-cli/internal/client/models"
)

func describeAppointment(a models.Appointment) string {
	doctor := "N/A"
	if a.Doctor != nil {
		doctor = a.Doctor.Name
		if s := a.Doctor.DisplaySpecialty(); s != "" {
			doctor = fmt.Sprintf("%s (%s)", doctor, s)
		}
	}
	return fmt.Sprintf("%s  %s %s  %-10s  %s", a.ID, orNA(a.Date), orNA(a.Time), orNA(a.Status), doctor)
}

// Appointments lists the patient's appointments, optionally narrowed to one
// tab: upcoming, past or cancelled.
func (a *App) Appointments(ctx context.Context, args []string) error {
	var list []models.Appointment

	if len(args) == 0 {
		list = a.appointments.List(ctx)
	} else {
		var b models.Bucket
		switch args[0] {
		case "upcoming":
			b = models.BucketUpcoming
		case "past":
			b = models.BucketPast
		case "cancelled":
			b = models.BucketCancelled
		default:
			printlnFn("Usage: appointments [upcoming|past|cancelled]")
			return nil
		}
		list = a.appointments.ListBucket(ctx, b)
	}

	if len(list) == 0 {
		printlnFn("No appointments.")
		return nil
	}
	for _, item := range list {
		printlnFn(describeAppointment(item))
	}
	return nil
}

func (a *App) Book(ctx context.Context) error {
	doctorID, err := GetSimpleText(a.reader, "Enter doctor ID", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	var req models.BookingRequest
	if req.Date, err = GetSimpleText(a.reader, "Enter date (YYYY-MM-DD)", os.Stdout); err != nil {
		return err
	}
	if req.Time, err = GetSimpleText(a.reader, "Enter time (HH:MM)", os.Stdout); err != nil {
		return err
	}
	if req.Type, err = GetSimpleText(a.reader, "Enter visit type", os.Stdout); err != nil {
		return err
	}

	durStr, err := GetSimpleText(a.reader, "Enter duration in minutes", os.Stdout)
	if err != nil {
		return err
	}
	if req.Duration, err = strconv.Atoi(durStr); err != nil {
		printlnFn("Duration must be a number.")
		return err
	}

	if req.Notes, err = GetSimpleText(a.reader, "Notes (optional)", os.Stdout); err != nil {
		return err
	}

	appt, err := a.appointments.Book(ctx, doctorID, req)
	if err != nil {
		printlnFn("Booking failed:", err.Error())
		return a.checkSession(err)
	}

	printlnFn("Booked:", describeAppointment(*appt))
	return nil
}

func (a *App) CancelAppointment(ctx context.Context, args []string) error {
	if err := a.appointments.Cancel(ctx, args[0]); err != nil {
		printlnFn("Cancel failed:", err.Error())
		return a.checkSession(err)
	}
	printlnFn("Appointment cancelled.")
	return nil
}
