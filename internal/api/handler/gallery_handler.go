package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bellastudio/booking-api/internal/core/domain"
	"github.com/bellastudio/booking-api/internal/core/ports"
)

// GalleryHandler handles HTTP requests for portfolio images.
type GalleryHandler struct {
	gallery ports.GalleryService
}

func NewGalleryHandler(gallery ports.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

type galleryItemRequest struct {
	Title    string `json:"title"    validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
	Category string `json:"category"`
}

type galleryItemResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type listGalleryResponse struct {
	Gallery []galleryItemResponse `json:"gallery"`
}

func toGalleryResponse(item *domain.GalleryItem) galleryItemResponse {
	return galleryItemResponse{
		ID:        item.ID,
		Title:     item.Title,
		ImageURL:  item.ImageURL,
		Category:  item.Category,
		CreatedAt: item.CreatedAt.UTC(),
	}
}

// List handles GET /api/gallery (public).
//
// @Summary      List gallery items
// @Tags         gallery
// @Produce      json
// @Success      200  {object}  listGalleryResponse
// @Router       /api/gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	items, err := h.gallery.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]galleryItemResponse, len(items))
	for i := range items {
		out[i] = toGalleryResponse(&items[i])
	}
	return c.JSON(http.StatusOK, listGalleryResponse{Gallery: out})
}

// Create handles POST /api/gallery (admin only).
//
// @Summary      Add a gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      galleryItemRequest  true  "Gallery item"
// @Success      201   {object}  galleryItemResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/gallery [post]
func (h *GalleryHandler) Create(c echo.Context) error {
	var req galleryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.gallery.Create(c.Request().Context(), ports.GalleryItemInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toGalleryResponse(created))
}

// Update handles PUT /api/gallery/:id (admin only).
//
// @Summary      Update a gallery item
// @Tags         gallery
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Gallery item id"
// @Param        body  body      galleryItemRequest  true  "Gallery item"
// @Success      200   {object}  galleryItemResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/gallery/{id} [put]
func (h *GalleryHandler) Update(c echo.Context) error {
	var req galleryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.gallery.Update(c.Request().Context(), c.Param("id"), ports.GalleryItemInput{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Category: req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGalleryResponse(updated))
}

// Delete handles DELETE /api/gallery/:id (admin only).
//
// @Summary      Delete a gallery item
// @Tags         gallery
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Gallery item id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c echo.Context) error {
	if err := h.gallery.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "gallery item deleted"})
}
