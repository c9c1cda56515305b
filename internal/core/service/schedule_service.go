package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// ScheduleService manages blocked booking dates.
type ScheduleService struct {
	repo ports.ScheduleRepository
	log  zerolog.Logger
}

func NewScheduleService(repo ports.ScheduleRepository, log zerolog.Logger) *ScheduleService {
	return &ScheduleService{repo: repo, log: log}
}

func (s *ScheduleService) ListBlockedDates(ctx context.Context) ([]domain.BlockedDate, error) {
	return s.repo.ListBlockedDates(ctx)
}

func (s *ScheduleService) BlockDate(ctx context.Context, input ports.BlockedDateInput) (*domain.BlockedDate, error) {
	if _, err := time.Parse(domain.DateLayout, input.Date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", domain.ErrInvalidInput, input.Date)
	}

	blocked := &domain.BlockedDate{
		Date:      input.Date,
		Reason:    input.Reason,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.repo.CreateBlockedDate(ctx, blocked)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("date", created.Date).Msg("date blocked")
	return created, nil
}

func (s *ScheduleService) UnblockDate(ctx context.Context, id string) error {
	return s.repo.DeleteBlockedDate(ctx, id)
}
