package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bellastudio/booking-api/internal/core/domain"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "id_" + user.Username
	r.users[copy.Username] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) addUser(t *testing.T, username, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := r.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func newAuthService(repo *stubUserRepo) (*AuthService, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, tokens, "admin", zerolog.Nop()), tokens
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	created := repo.addUser(t, "carol", "s3cret", domain.RoleUser)
	svc, tokens := newAuthService(repo)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	subject, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if subject != created.ID {
		t.Fatalf("expected subject %q, got %q", created.ID, subject)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	repo := newStubUserRepo()
	repo.addUser(t, "dave", "goodpass", domain.RoleUser)
	svc, _ := newAuthService(repo)

	_, _, errWrongPass := svc.Login(context.Background(), "dave", "badpass")
	_, _, errNoUser := svc.Login(context.Background(), "ghost", "whatever")

	if !errors.Is(errWrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	// Enumeration resistance: the two failures must be indistinguishable.
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("expected identical errors, got %q vs %q", errWrongPass, errNoUser)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "user", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_BootstrapAdmin_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	if err := svc.BootstrapAdmin(context.Background()); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}
	if err := svc.BootstrapAdmin(context.Background()); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}

	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(repo.users))
	}
	admin, err := repo.FindByUsername(context.Background(), domain.BootstrapAdminUsername)
	if err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin")) != nil {
		t.Fatalf("bootstrap password does not verify")
	}
}

func TestAuthService_BootstrapAdmin_LosesRaceGracefully(t *testing.T) {
	repo := newStubUserRepo()
	// Admin already created by a concurrent instance.
	repo.addUser(t, domain.BootstrapAdminUsername, "other", domain.RoleAdmin)
	svc, _ := newAuthService(repo)

	if err := svc.BootstrapAdmin(context.Background()); err != nil {
		t.Fatalf("bootstrap should be a no-op, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user, got %d", len(repo.users))
	}
}
