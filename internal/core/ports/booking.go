package ports

import (
	"context"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

// BookAppointmentInput carries everything needed to book a slot.
type BookAppointmentInput struct {
	ServiceID    string
	CustomerName string
	Email        string
	Phone        string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
	Notes        string
}

// ListAppointmentsFilter narrows the admin appointment listing.
type ListAppointmentsFilter struct {
	Date   string // optional: exact date match
	Status string // optional: filter by status
}

// BookingService defines use-case operations for appointments.
type BookingService interface {
	// Book validates the request, rejects blocked dates and occupied slots,
	// persists the appointment, and queues a confirmation notification.
	Book(ctx context.Context, input BookAppointmentInput) (*domain.Appointment, error)
	List(ctx context.Context, filter ListAppointmentsFilter) ([]domain.Appointment, error)
	// UpdateStatus moves an appointment to a new status. Cancelling releases
	// the slot so it can be rebooked.
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// FindActiveBySlot returns the non-cancelled appointment occupying the
	// (date, time) slot, or domain.ErrAppointmentNotFound when the slot is free.
	FindActiveBySlot(ctx context.Context, date, timeOfDay string) (*domain.Appointment, error)
	List(ctx context.Context, filter ListAppointmentsFilter) ([]domain.Appointment, error)
	// UpdateStatus returns domain.ErrAppointmentNotFound when no document matches.
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	// Delete returns domain.ErrAppointmentNotFound when no document matches.
	Delete(ctx context.Context, id string) error
}
