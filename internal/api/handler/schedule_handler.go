package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// ScheduleHandler handles HTTP requests for blocked booking dates.
type ScheduleHandler struct {
	schedule ports.ScheduleService
}

func NewScheduleHandler(schedule ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

type blockDateRequest struct {
	Date   string `json:"date"   validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason"`
}

type blockedDateResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type listBlockedDatesResponse struct {
	BlockedDates []blockedDateResponse `json:"blocked_dates"`
}

func toBlockedDateResponse(b *domain.BlockedDate) blockedDateResponse {
	return blockedDateResponse{
		ID:        b.ID,
		Date:      b.Date,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt.UTC(),
	}
}

// ListBlockedDates handles GET /api/schedule/blocked-dates (public); the
// booking widget needs it to grey out unavailable days.
//
// @Summary      List blocked dates
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  listBlockedDatesResponse
// @Router       /api/schedule/blocked-dates [get]
func (h *ScheduleHandler) ListBlockedDates(c echo.Context) error {
	dates, err := h.schedule.ListBlockedDates(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]blockedDateResponse, len(dates))
	for i := range dates {
		out[i] = toBlockedDateResponse(&dates[i])
	}
	return c.JSON(http.StatusOK, listBlockedDatesResponse{BlockedDates: out})
}

// BlockDate handles POST /api/schedule/blocked-dates (admin only).
//
// @Summary      Block a date
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      blockDateRequest  true  "Date to block"
// @Success      201   {object}  blockedDateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/schedule/blocked-dates [post]
func (h *ScheduleHandler) BlockDate(c echo.Context) error {
	var req blockDateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.schedule.BlockDate(c.Request().Context(), ports.BlockedDateInput{
		Date:   req.Date,
		Reason: req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toBlockedDateResponse(created))
}

// UnblockDate handles DELETE /api/schedule/blocked-dates/:id (admin only).
//
// @Summary      Unblock a date
// @Tags         schedule
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Blocked date id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/schedule/blocked-dates/{id} [delete]
func (h *ScheduleHandler) UnblockDate(c echo.Context) error {
	if err := h.schedule.UnblockDate(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "date unblocked"})
}
