package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// SlotHolder abstracts the atomic slot reservation store (Redis). Acquire
// must be atomic across concurrent bookings of the same slot.
type SlotHolder interface {
	// Acquire reserves the (date, time) slot; false means it is taken.
	Acquire(ctx context.Context, date, timeOfDay string) (bool, error)
	// Release frees a previously acquired slot.
	Release(ctx context.Context, date, timeOfDay string) error
}

// NotificationQueue is the interface the booking service uses to hand off
// confirmation jobs without blocking the request.
type NotificationQueue interface {
	Enqueue(job ports.NotificationJob)
}

// BookingService implements appointment booking and administration.
type BookingService struct {
	appointments ports.AppointmentRepository
	catalog      ports.ServiceRepository
	schedule     ports.ScheduleRepository
	slots        SlotHolder
	queue        NotificationQueue
	log          zerolog.Logger
}

func NewBookingService(
	appointments ports.AppointmentRepository,
	catalog ports.ServiceRepository,
	schedule ports.ScheduleRepository,
	slots SlotHolder,
	queue NotificationQueue,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		appointments: appointments,
		catalog:      catalog,
		schedule:     schedule,
		slots:        slots,
		queue:        queue,
		log:          log,
	}
}

// Book validates the request, rejects blocked dates and occupied slots, and
// persists the appointment. The confirmation notification is queued
// asynchronously; its failure never fails the booking.
func (s *BookingService) Book(ctx context.Context, input ports.BookAppointmentInput) (*domain.Appointment, error) {
	if _, err := time.Parse(domain.DateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", domain.ErrInvalidInput, input.Date)
	}
	if _, err := time.Parse(domain.TimeLayout, input.Time); err != nil {
		return nil, fmt.Errorf("%w: bad time %q", domain.ErrInvalidInput, input.Time)
	}

	svc, err := s.catalog.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	blocked, err := s.schedule.IsDateBlocked(ctx, input.Date)
	if err != nil {
		return nil, fmt.Errorf("book: check blocked date: %w", err)
	}
	if blocked {
		return nil, domain.ErrDateBlocked
	}

	// The store is the authoritative occupancy check: a non-cancelled
	// appointment at this slot rejects the booking regardless of what the
	// Redis hold says. The hold below only serializes concurrent requests
	// racing for a free slot.
	if _, err := s.appointments.FindActiveBySlot(ctx, input.Date, input.Time); err == nil {
		return nil, domain.ErrSlotTaken
	} else if !errors.Is(err, domain.ErrAppointmentNotFound) {
		return nil, fmt.Errorf("book: check slot occupancy: %w", err)
	}

	ok, err := s.slots.Acquire(ctx, input.Date, input.Time)
	if err != nil {
		return nil, fmt.Errorf("book: acquire slot: %w", err)
	}
	if !ok {
		return nil, domain.ErrSlotTaken
	}

	appt := &domain.Appointment{
		ServiceID:    input.ServiceID,
		CustomerName: input.CustomerName,
		Email:        input.Email,
		Phone:        input.Phone,
		Date:         input.Date,
		Time:         input.Time,
		Notes:        input.Notes,
		Status:       domain.AppointmentPending,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.appointments.Create(ctx, appt)
	if err != nil {
		// Free the slot so the customer can retry.
		if relErr := s.slots.Release(ctx, input.Date, input.Time); relErr != nil {
			s.log.Warn().Err(relErr).Str("date", input.Date).Str("time", input.Time).Msg("failed to release slot after create failure")
		}
		return nil, err
	}

	s.queue.Enqueue(ports.NotificationJob{
		AppointmentID: created.ID,
		Recipient:     created.Email,
		CustomerName:  created.CustomerName,
		ServiceName:   svc.Name,
		Date:          created.Date,
		Time:          created.Time,
	})

	s.log.Info().
		Str("appointment_id", created.ID).
		Str("service_id", created.ServiceID).
		Str("date", created.Date).
		Str("time", created.Time).
		Msg("appointment booked")

	return created, nil
}

func (s *BookingService) List(ctx context.Context, filter ports.ListAppointmentsFilter) ([]domain.Appointment, error) {
	return s.appointments.List(ctx, filter)
}

// UpdateStatus moves an appointment to a new status. Cancelling releases the
// slot hold so the slot can be rebooked; a cancelled appointment no longer
// owns its slot, so it can neither be reactivated nor release the hold again.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasCancelled := appt.Status == domain.AppointmentCancelled
	if wasCancelled && status != domain.AppointmentCancelled {
		// The slot may have been rebooked since the cancellation. Reactivating
		// would occupy it without going through the booking conflict checks.
		return nil, fmt.Errorf("%w: cannot reactivate a cancelled appointment", domain.ErrInvalidStatus)
	}

	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appt.Status = status

	if status == domain.AppointmentCancelled && !wasCancelled {
		if err := s.slots.Release(ctx, appt.Date, appt.Time); err != nil {
			s.log.Warn().Err(err).Str("appointment_id", id).Msg("failed to release slot on cancellation")
		}
	}

	s.log.Info().Str("appointment_id", id).Str("status", string(status)).Msg("appointment status updated")
	return appt, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return err
		}
		return fmt.Errorf("delete appointment: %w", err)
	}

	if err := s.appointments.Delete(ctx, id); err != nil {
		return err
	}

	// A cancelled appointment gave up its slot at cancellation time; the hold
	// may now belong to a newer booking and must not be released again.
	if appt.Status != domain.AppointmentCancelled {
		if err := s.slots.Release(ctx, appt.Date, appt.Time); err != nil {
			s.log.Warn().Err(err).Str("appointment_id", id).Msg("failed to release slot on delete")
		}
	}

	s.log.Info().Str("appointment_id", id).Msg("appointment deleted")
	return nil
}
