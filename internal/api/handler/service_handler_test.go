package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

type stubCatalogService struct {
	services    []domain.Service
	created     *ports.ServiceInput
	createCalls int
}

func (s *stubCatalogService) List(_ context.Context) ([]domain.Service, error) {
	return s.services, nil
}

func (s *stubCatalogService) Create(_ context.Context, input ports.ServiceInput) (*domain.Service, error) {
	s.createCalls++
	s.created = &input
	return &domain.Service{
		ID:              "svc_1",
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		ImageURL:        input.ImageURL,
	}, nil
}

func (s *stubCatalogService) Update(_ context.Context, id string, input ports.ServiceInput) (*domain.Service, error) {
	return nil, domain.ErrServiceNotFound
}

func (s *stubCatalogService) Delete(_ context.Context, id string) error {
	return domain.ErrServiceNotFound
}

func TestServiceHandler_List(t *testing.T) {
	catalog := &stubCatalogService{services: []domain.Service{
		{ID: "svc_1", Name: "Haircut", DurationMinutes: 30, Price: 20},
		{ID: "svc_2", Name: "Coloring", DurationMinutes: 90, Price: 80},
	}}
	h := NewServiceHandler(catalog)
	c, rec := newTestContext(t, http.MethodGet, "/api/services", "")

	if err := h.List(c); err != nil {
		t.Fatalf("list handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listServicesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(resp.Services))
	}
	if resp.Services[0].ID != "svc_1" || resp.Services[0].Duration != 30 {
		t.Fatalf("unexpected first service: %+v", resp.Services[0])
	}
}

func TestServiceHandler_Create(t *testing.T) {
	catalog := &stubCatalogService{}
	h := NewServiceHandler(catalog)
	c, rec := newTestContext(t, http.MethodPost, "/api/services", `{"name":"Haircut","duration":30,"price":20}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp createServiceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Service.Name != "Haircut" {
		t.Fatalf("unexpected service: %+v", resp.Service)
	}
	// Omitted optional fields are stored as empty strings.
	if resp.Service.Description != "" || resp.Service.ImageURL != "" {
		t.Fatalf("expected empty defaults, got %+v", resp.Service)
	}
}

func TestServiceHandler_Create_MissingDuration(t *testing.T) {
	catalog := &stubCatalogService{}
	h := NewServiceHandler(catalog)
	c, _ := newTestContext(t, http.MethodPost, "/api/services", `{"name":"Haircut"}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.Code)
	}
	if catalog.createCalls != 0 {
		t.Fatalf("service must not be called on invalid input")
	}
}

func TestServiceHandler_UpdateAndDelete_MissingID(t *testing.T) {
	h := NewServiceHandler(&stubCatalogService{})

	c, _ := newTestContext(t, http.MethodPut, "/api/services/missing", `{"name":"X","duration":10}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Update(c); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("update: expected ErrServiceNotFound, got %v", err)
	}

	c, _ = newTestContext(t, http.MethodDelete, "/api/services/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Delete(c); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("delete: expected ErrServiceNotFound, got %v", err)
	}
}
