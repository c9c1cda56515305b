package handler

import (
	"time"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// serviceRequest is the shared body for create and update. Name and duration
// are mandatory; the rest defaults to zero values.
type serviceRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"    validate:"required,gt=0"`
	Price       float64 `json:"price"       validate:"gte=0"`
	ImageURL    string  `json:"imageUrl"`
}

type serviceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listServicesResponse struct {
	Services []serviceResponse `json:"services"`
}

type createServiceResponse struct {
	Message string          `json:"message"`
	Service serviceResponse `json:"service"`
}

func toServiceInput(req serviceRequest) ports.ServiceInput {
	return ports.ServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.Duration,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
	}
}

func toServiceResponse(s *domain.Service) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.DurationMinutes,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
		CreatedAt:   s.CreatedAt.UTC(),
		UpdatedAt:   s.UpdatedAt.UTC(),
	}
}
