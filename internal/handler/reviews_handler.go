package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/service"
)

// ReviewsHandler exposes the public review listing and moderation endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewsService
}

// NewReviewsHandler creates a new handler instance.
func NewReviewsHandler(reviews *service.ReviewsService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

// List handles GET /reviews requests.
func (h *ReviewsHandler) List(c echo.Context) error {
	reviews, err := h.reviews.ListApproved(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "failed to list reviews")
	}

	return Success(c, http.StatusOK, "", reviews)
}

// ListAdmin handles GET /admin/reviews requests.
func (h *ReviewsHandler) ListAdmin(c echo.Context) error {
	reviews, err := h.reviews.AdminList(c.Request().Context(), strings.TrimSpace(c.QueryParam("status")))
	if err != nil {
		return serviceError(c, err, "failed to list reviews")
	}

	return Success(c, http.StatusOK, "", reviews)
}

// UpdateStatus handles PATCH /admin/reviews/:id/status requests.
func (h *ReviewsHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	review, err := h.reviews.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return serviceError(c, err, "failed to update review")
	}

	return Success(c, http.StatusOK, "review updated", review)
}

// SetFeatured handles PATCH /admin/reviews/:id/featured requests.
func (h *ReviewsHandler) SetFeatured(c echo.Context) error {
	var req dto.SetFeaturedRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	if err := h.reviews.SetFeatured(c.Request().Context(), c.Param("id"), req.Featured); err != nil {
		return serviceError(c, err, "failed to update review")
	}

	return Success(c, http.StatusOK, "review updated", nil)
}

// Delete handles DELETE /admin/reviews/:id requests.
func (h *ReviewsHandler) Delete(c echo.Context) error {
	if err := h.reviews.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(c, err, "failed to delete review")
	}

	return Success(c, http.StatusOK, "review deleted", nil)
}
