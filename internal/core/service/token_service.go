package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

const defaultTokenLifetime = 24 * time.Hour

// TokenService issues and verifies HS256-signed bearer tokens. Tokens are
// stateless: there is no revocation list, they simply expire.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
	// now is swappable for expiry tests.
	now func() time.Time
}

func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	if lifetime <= 0 {
		lifetime = defaultTokenLifetime
	}
	return &TokenService{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Issue returns a signed token carrying userID as subject, valid from now for
// the configured lifetime.
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the token subject.
// Every failure collapses into domain.ErrInvalidToken so callers cannot
// leak the sub-cause to clients.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
