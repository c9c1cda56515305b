package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bellastudio/booking-api/internal/core/ports"
)

// ServiceHandler handles HTTP requests for the service catalog.
type ServiceHandler struct {
	catalog ports.CatalogService
}

func NewServiceHandler(catalog ports.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// List handles GET /api/services (public).
//
// @Summary      List all services
// @Tags         services
// @Produce      json
// @Success      200  {object}  listServicesResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]serviceResponse, len(services))
	for i := range services {
		items[i] = toServiceResponse(&services[i])
	}
	return c.JSON(http.StatusOK, listServicesResponse{Services: items})
}

// Create handles POST /api/services (admin only).
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      201   {object}  createServiceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/services [post]
func (h *ServiceHandler) Create(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.catalog.Create(c.Request().Context(), toServiceInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createServiceResponse{
		Message: "service created",
		Service: toServiceResponse(created),
	})
}

// Update handles PUT /api/services/:id (admin only).
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Service id"
// @Param        body  body      serviceRequest  true  "Service details"
// @Success      200   {object}  createServiceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/services/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.catalog.Update(c.Request().Context(), c.Param("id"), toServiceInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createServiceResponse{
		Message: "service updated",
		Service: toServiceResponse(updated),
	})
}

// Delete handles DELETE /api/services/:id (admin only).
//
// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Service id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "service deleted"})
}
