package ports

import (
	"context"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

// GalleryItemInput carries the writable fields of a gallery image.
type GalleryItemInput struct {
	Title    string
	ImageURL string
	Category string
}

type GalleryService interface {
	List(ctx context.Context) ([]domain.GalleryItem, error)
	Create(ctx context.Context, input GalleryItemInput) (*domain.GalleryItem, error)
	Update(ctx context.Context, id string, input GalleryItemInput) (*domain.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}

type GalleryRepository interface {
	List(ctx context.Context) ([]domain.GalleryItem, error)
	Create(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error)
	Update(ctx context.Context, item *domain.GalleryItem) (*domain.GalleryItem, error)
	Delete(ctx context.Context, id string) error
}
