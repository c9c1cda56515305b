package ports

import (
	"context"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. The backing store
// must enforce username uniqueness (unique index).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
