package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/service"
)

// FormsHandler exposes the public intake form endpoints.
type FormsHandler struct {
	intake *service.IntakeService
}

// NewFormsHandler creates a new handler instance.
func NewFormsHandler(intake *service.IntakeService) *FormsHandler {
	return &FormsHandler{intake: intake}
}

// SubmitBookCall handles POST /forms/book-call requests.
func (h *FormsHandler) SubmitBookCall(c echo.Context) error {
	var req dto.BookCallRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	submission, err := h.intake.SubmitBookCall(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "failed to record submission")
	}

	return Success(c, http.StatusCreated, "submission received", submission)
}

// SubmitServiceOrder handles POST /forms/order-service requests.
func (h *FormsHandler) SubmitServiceOrder(c echo.Context) error {
	var req dto.ServiceOrderRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	submission, err := h.intake.SubmitServiceOrder(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "failed to record submission")
	}

	return Success(c, http.StatusCreated, "submission received", submission)
}

// SubmitPartnership handles POST /forms/partnership requests.
func (h *FormsHandler) SubmitPartnership(c echo.Context) error {
	var req dto.PartnershipRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	submission, err := h.intake.SubmitPartnership(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "failed to record submission")
	}

	return Success(c, http.StatusCreated, "submission received", submission)
}
