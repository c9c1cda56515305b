package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// ReviewService implements CRUD on customer testimonials.
type ReviewService struct {
	repo ports.ReviewRepository
	log  zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, log: log}
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.List(ctx)
}

func (s *ReviewService) Create(ctx context.Context, input ports.ReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		AuthorName: input.AuthorName,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := s.repo.Create(ctx, review)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("review_id", created.ID).Int("rating", created.Rating).Msg("review created")
	return created, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, input ports.ReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		ID:         id,
		AuthorName: input.AuthorName,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	return s.repo.Update(ctx, review)
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
