package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellastudio/booking-api/internal/api/metrics"
	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for bookings.
type AppointmentHandler struct {
	booking ports.BookingService
}

func NewAppointmentHandler(booking ports.BookingService) *AppointmentHandler {
	return &AppointmentHandler{booking: booking}
}

// Book handles POST /api/appointments (public); customers book directly.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      bookAppointmentRequest  true  "Booking details"
// @Success      201   {object}  bookAppointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.booking.Book(c.Request().Context(), toBookInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotTaken):
			metrics.BookingConflictsTotal.WithLabelValues("slot_taken").Inc()
		case errors.Is(err, domain.ErrDateBlocked):
			metrics.BookingConflictsTotal.WithLabelValues("date_blocked").Inc()
		}
		return err
	}
	metrics.AppointmentsBookedTotal.WithLabelValues(created.ServiceID).Inc()

	return c.JSON(http.StatusCreated, bookAppointmentResponse{
		Message:     "appointment booked",
		Appointment: toAppointmentResponse(created),
	})
}

// List handles GET /api/appointments (admin only). Supports optional ?date=
// and ?status= filters.
//
// @Summary      List appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        date    query     string  false  "Filter by date (YYYY-MM-DD)"
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  listAppointmentsResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.booking.List(c.Request().Context(), ports.ListAppointmentsFilter{
		Date:   c.QueryParam("date"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	items := make([]appointmentResponse, len(appointments))
	for i := range appointments {
		items[i] = toAppointmentResponse(&appointments[i])
	}
	return c.JSON(http.StatusOK, listAppointmentsResponse{Appointments: items})
}

// UpdateStatus handles PUT /api/appointments/:id/status (admin only).
//
// @Summary      Update appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                          true  "Appointment id"
// @Param        body  body      updateAppointmentStatusRequest  true  "New status"
// @Success      200   {object}  bookAppointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/appointments/{id}/status [put]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	var req updateAppointmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.booking.UpdateStatus(c.Request().Context(), c.Param("id"), domain.AppointmentStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookAppointmentResponse{
		Message:     "appointment updated",
		Appointment: toAppointmentResponse(updated),
	})
}

// Delete handles DELETE /api/appointments/:id (admin only).
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Appointment id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	if err := h.booking.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "appointment deleted"})
}
