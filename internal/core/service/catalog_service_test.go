package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

type stubServiceRepo struct {
	services map[string]*domain.Service
	nextID   int
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[string]*domain.Service)}
}

func (r *stubServiceRepo) List(_ context.Context) ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	if s, ok := r.services[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrServiceNotFound
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.nextID++
	s.ID = "svc_" + strconv.Itoa(r.nextID)
	clone := *s
	r.services[s.ID] = &clone
	return s, nil
}

func (r *stubServiceRepo) Update(_ context.Context, s *domain.Service) (*domain.Service, error) {
	existing, ok := r.services[s.ID]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	existing.Name = s.Name
	existing.Description = s.Description
	existing.DurationMinutes = s.DurationMinutes
	existing.Price = s.Price
	existing.ImageURL = s.ImageURL
	existing.UpdatedAt = s.UpdatedAt
	clone := *existing
	return &clone, nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

func TestCatalogService_Create_DefaultsAndRoundTrip(t *testing.T) {
	repo := newStubServiceRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ServiceInput{
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           20,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.Description != "" || created.ImageURL != "" {
		t.Fatalf("expected empty defaults, got %q / %q", created.Description, created.ImageURL)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 service, got %d", len(listed))
	}
	got := listed[0]
	if got.Name != "Haircut" || got.DurationMinutes != 30 || got.Price != 20 {
		t.Fatalf("unexpected service: %+v", got)
	}
}

func TestCatalogService_Update_MissingID(t *testing.T) {
	svc := NewCatalogService(newStubServiceRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), "missing", ports.ServiceInput{Name: "X", DurationMinutes: 10})
	if !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestCatalogService_Delete_MissingID(t *testing.T) {
	svc := NewCatalogService(newStubServiceRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}
