package ports

import (
	"context"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

// NotificationJob is the unit of work handed to the notification dispatcher.
type NotificationJob struct {
	AppointmentID string
	Recipient     string
	CustomerName  string
	ServiceName   string
	Date          string
	Time          string
}

// NotificationProcessor consumes queued notification jobs.
type NotificationProcessor interface {
	Process(ctx context.Context, job NotificationJob) error
}

// NotificationRepository persists the confirmation audit trail.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}
