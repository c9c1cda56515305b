package ports

import (
	"context"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

// BlockedDateInput carries the writable fields of a blocked date entry.
type BlockedDateInput struct {
	Date   string // YYYY-MM-DD
	Reason string
}

type ScheduleService interface {
	ListBlockedDates(ctx context.Context) ([]domain.BlockedDate, error)
	BlockDate(ctx context.Context, input BlockedDateInput) (*domain.BlockedDate, error)
	UnblockDate(ctx context.Context, id string) error
}

type ScheduleRepository interface {
	ListBlockedDates(ctx context.Context) ([]domain.BlockedDate, error)
	IsDateBlocked(ctx context.Context, date string) (bool, error)
	CreateBlockedDate(ctx context.Context, b *domain.BlockedDate) (*domain.BlockedDate, error)
	DeleteBlockedDate(ctx context.Context, id string) error
}
