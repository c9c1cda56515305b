package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	findErr error
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func runAdminOnly(t *testing.T, users *stubUserRepo, userID string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if userID != "" {
		c.Set(ContextUserID, userID)
	}

	handler := AdminOnly(users)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestAdminOnly_AdminPasses(t *testing.T) {
	users := &stubUserRepo{users: map[string]*domain.User{
		"admin_1": {ID: "admin_1", Username: "admin", Role: domain.RoleAdmin},
	}}

	if err := runAdminOnly(t, users, "admin_1"); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	users := &stubUserRepo{users: map[string]*domain.User{
		"user_1": {ID: "user_1", Username: "carol", Role: domain.RoleUser},
	}}

	assertHTTPError(t, runAdminOnly(t, users, "user_1"), http.StatusForbidden)
}

func TestAdminOnly_LookupFailureFailsClosed(t *testing.T) {
	users := &stubUserRepo{findErr: errors.New("store unavailable")}

	assertHTTPError(t, runAdminOnly(t, users, "admin_1"), http.StatusForbidden)
}

func TestAdminOnly_UnknownUserForbidden(t *testing.T) {
	users := &stubUserRepo{users: map[string]*domain.User{}}

	assertHTTPError(t, runAdminOnly(t, users, "ghost"), http.StatusForbidden)
}

func TestAdminOnly_MissingUserID(t *testing.T) {
	users := &stubUserRepo{}

	assertHTTPError(t, runAdminOnly(t, users, ""), http.StatusUnauthorized)
}
