package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// GalleryService implements CRUD on portfolio images.
type GalleryService struct {
	repo ports.GalleryRepository
	log  zerolog.Logger
}

func NewGalleryService(repo ports.GalleryRepository, log zerolog.Logger) *GalleryService {
	return &GalleryService{repo: repo, log: log}
}

func (s *GalleryService) List(ctx context.Context) ([]domain.GalleryItem, error) {
	return s.repo.List(ctx)
}

func (s *GalleryService) Create(ctx context.Context, input ports.GalleryItemInput) (*domain.GalleryItem, error) {
	item := &domain.GalleryItem{
		Title:     input.Title,
		ImageURL:  input.ImageURL,
		Category:  input.Category,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("gallery_id", created.ID).Msg("gallery item created")
	return created, nil
}

func (s *GalleryService) Update(ctx context.Context, id string, input ports.GalleryItemInput) (*domain.GalleryItem, error) {
	item := &domain.GalleryItem{
		ID:       id,
		Title:    input.Title,
		ImageURL: input.ImageURL,
		Category: input.Category,
	}
	return s.repo.Update(ctx, item)
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
