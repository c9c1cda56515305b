package ports

import (
	"context"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

// ReviewInput carries the writable fields of a testimonial.
type ReviewInput struct {
	AuthorName string
	Rating     int
	Comment    string
}

type ReviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, input ReviewInput) (*domain.Review, error)
	Update(ctx context.Context, id string, input ReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	Update(ctx context.Context, r *domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}
