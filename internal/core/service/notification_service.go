package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// NotificationService turns queued booking jobs into persisted confirmation
// records. Actual delivery (mail provider) is out of band; the record is what
// the staff dashboard reads.
type NotificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, log: log}
}

// Process persists a confirmation record for the given booking job.
func (s *NotificationService) Process(ctx context.Context, job ports.NotificationJob) error {
	n := &domain.Notification{
		AppointmentID: job.AppointmentID,
		Recipient:     job.Recipient,
		Subject:       fmt.Sprintf("Booking confirmation: %s on %s", job.ServiceName, job.Date),
		Body: fmt.Sprintf("Hi %s, your appointment for %s is booked on %s at %s.",
			job.CustomerName, job.ServiceName, job.Date, job.Time),
		Status:    domain.NotificationSent,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("notification: %w", err)
	}

	s.log.Debug().Str("appointment_id", job.AppointmentID).Str("recipient", job.Recipient).Msg("confirmation recorded")
	return nil
}
