package ports

import (
	"context"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

// ServiceInput carries the writable fields of a service offering.
// Optional fields arrive zero-valued and are stored as-is.
type ServiceInput struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	ImageURL        string
}

// CatalogService defines use-case operations on the service catalog.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Service, error)
	Create(ctx context.Context, input ServiceInput) (*domain.Service, error)
	Update(ctx context.Context, id string, input ServiceInput) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	// Update replaces the writable fields of the service with the given id.
	// Returns domain.ErrServiceNotFound when no document matches.
	Update(ctx context.Context, s *domain.Service) (*domain.Service, error)
	// Delete returns domain.ErrServiceNotFound when no document matches.
	Delete(ctx context.Context, id string) error
}
