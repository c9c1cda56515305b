package ports

import (
	"context"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies the password for username and returns a bearer token
	// plus the user. Unknown username and wrong password both return
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// BootstrapAdmin creates the default admin account when none exists.
	// Idempotent: a second call is a no-op.
	BootstrapAdmin(ctx context.Context) error
}
