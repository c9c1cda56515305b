package handler

import (
	"time"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

type bookAppointmentRequest struct {
	ServiceID    string `json:"service_id"    validate:"required"`
	CustomerName string `json:"customer_name" validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	Phone        string `json:"phone"         validate:"required"`
	Date         string `json:"date"          validate:"required,datetime=2006-01-02"`
	Time         string `json:"time"          validate:"required,datetime=15:04"`
	Notes        string `json:"notes"`
}

type updateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type appointmentResponse struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"service_id"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type listAppointmentsResponse struct {
	Appointments []appointmentResponse `json:"appointments"`
}

type bookAppointmentResponse struct {
	Message     string              `json:"message"`
	Appointment appointmentResponse `json:"appointment"`
}

func toBookInput(req bookAppointmentRequest) ports.BookAppointmentInput {
	return ports.BookAppointmentInput{
		ServiceID:    req.ServiceID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	}
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:           a.ID,
		ServiceID:    a.ServiceID,
		CustomerName: a.CustomerName,
		Email:        a.Email,
		Phone:        a.Phone,
		Date:         a.Date,
		Time:         a.Time,
		Notes:        a.Notes,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.UTC(),
	}
}
