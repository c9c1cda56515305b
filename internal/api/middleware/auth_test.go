package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

type stubTokenService struct {
	subjects map[string]string
}

func (s *stubTokenService) Issue(userID string) (string, error) {
	return "token-for-" + userID, nil
}

func (s *stubTokenService) Verify(token string) (string, error) {
	if subject, ok := s.subjects[token]; ok {
		return subject, nil
	}
	return "", domain.ErrInvalidToken
}

func runAuth(t *testing.T, authorization string) (echo.Context, error) {
	t.Helper()
	tokens := &stubTokenService{subjects: map[string]string{"good-token": "user_1"}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(tokens)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func assertHTTPError(t *testing.T, err error, wantCode int) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != wantCode {
		t.Fatalf("expected status %d, got %d", wantCode, httpErr.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	c, err := runAuth(t, "Bearer good-token")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got, _ := c.Get(ContextUserID).(string); got != "user_1" {
		t.Fatalf("expected user_1 in context, got %q", got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := runAuth(t, "")
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_LowercaseBearerRejected(t *testing.T) {
	// The prefix match is case-sensitive.
	_, err := runAuth(t, "bearer good-token")
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuth_InvalidToken(t *testing.T) {
	_, err := runAuth(t, "Bearer bad-token")
	assertHTTPError(t, err, http.StatusUnauthorized)
}
