package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/service"
)

// EbooksHandler exposes the catalogue and checkout endpoints.
type EbooksHandler struct {
	ebooks *service.EbooksService
}

// NewEbooksHandler creates a new handler instance.
func NewEbooksHandler(ebooks *service.EbooksService) *EbooksHandler {
	return &EbooksHandler{ebooks: ebooks}
}

// List handles GET /ebooks requests.
func (h *EbooksHandler) List(c echo.Context) error {
	ebooks, err := h.ebooks.List(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "failed to list ebooks")
	}

	return Success(c, http.StatusOK, "", ebooks)
}

// Checkout handles POST /ebooks/:id/checkout requests.
func (h *EbooksHandler) Checkout(c echo.Context) error {
	url, err := h.ebooks.Checkout(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(c, err, "failed to start checkout")
	}

	return Success(c, http.StatusOK, "checkout session created", dto.CheckoutResponse{URL: url})
}

// Create handles POST /admin/ebooks requests.
func (h *EbooksHandler) Create(c echo.Context) error {
	var req dto.CreateEbookRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	ebook, err := h.ebooks.Create(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "failed to create ebook")
	}

	return Success(c, http.StatusCreated, "ebook created", ebook)
}

// Update handles PATCH /admin/ebooks/:id requests.
func (h *EbooksHandler) Update(c echo.Context) error {
	var req dto.UpdateEbookRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	ebook, err := h.ebooks.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return serviceError(c, err, "failed to update ebook")
	}

	return Success(c, http.StatusOK, "ebook updated", ebook)
}

// Delete handles DELETE /admin/ebooks/:id requests.
func (h *EbooksHandler) Delete(c echo.Context) error {
	if err := h.ebooks.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(c, err, "failed to delete ebook")
	}

	return Success(c, http.StatusOK, "ebook deleted", nil)
}
