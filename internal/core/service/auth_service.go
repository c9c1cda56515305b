package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// AuthService implements login and admin bootstrap.
type AuthService struct {
	users             ports.UserRepository
	tokens            ports.TokenService
	bootstrapPassword string
	log               zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, bootstrapPassword string, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:             users,
		tokens:            tokens,
		bootstrapPassword: bootstrapPassword,
		log:               log,
	}
}

// Login verifies the password for username and returns a bearer token plus
// the user. An unknown username and a wrong password are indistinguishable to
// the caller: both return domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("user logged in")
	return token, user, nil
}

// BootstrapAdmin creates the default admin account when no user with the
// reserved admin username exists. Safe to run on every startup.
func (s *AuthService) BootstrapAdmin(ctx context.Context) error {
	_, err := s.users.FindByUsername(ctx, domain.BootstrapAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.bootstrapPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bootstrap admin: hash password: %w", err)
	}

	admin := &domain.User{
		Username:     domain.BootstrapAdminUsername,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.users.Create(ctx, admin); err != nil {
		// A concurrent bootstrap may have won the race; the unique index
		// turns that into ErrUserExists, which still means "admin exists".
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	s.log.Warn().Msg("bootstrap admin account created with the default password; rotate it immediately")
	return nil
}
