package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// CatalogService implements CRUD on the service catalog.
type CatalogService struct {
	repo ports.ServiceRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Create(ctx context.Context, input ports.ServiceInput) (*domain.Service, error) {
	now := time.Now().UTC()
	svc := &domain.Service{
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		ImageURL:        input.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("service_id", created.ID).Str("name", created.Name).Msg("service created")
	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, input ports.ServiceInput) (*domain.Service, error) {
	svc := &domain.Service{
		ID:              id,
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		ImageURL:        input.ImageURL,
		UpdatedAt:       time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, svc)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("service_id", id).Msg("service updated")
	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("service_id", id).Msg("service deleted")
	return nil
}
