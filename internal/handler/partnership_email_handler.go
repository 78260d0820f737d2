package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/mailer"
)

// PartnershipEmailHandler relays partnership enquiry emails to the provider.
// It keeps the permissive CORS contract of the function it replaces: browsers
// call it directly from the marketing site.
type PartnershipEmailHandler struct {
	sender mailer.Sender
}

// NewPartnershipEmailHandler creates a new handler instance.
func NewPartnershipEmailHandler(sender mailer.Sender) *PartnershipEmailHandler {
	return &PartnershipEmailHandler{sender: sender}
}

func setCORSHeaders(c echo.Context) {
	h := c.Response().Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// Preflight handles OPTIONS /notify/partnership requests.
func (h *PartnershipEmailHandler) Preflight(c echo.Context) error {
	setCORSHeaders(c)
	return c.NoContent(http.StatusOK)
}

// Notify handles POST /notify/partnership requests. The provider response
// body is relayed verbatim on success; failures surface the raw error.
func (h *PartnershipEmailHandler) Notify(c echo.Context) error {
	setCORSHeaders(c)

	var req dto.PartnershipEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	body, err := h.sender.SendPartnership(c.Request().Context(), mailer.PartnershipNotification{
		FullName:         req.FullName,
		Email:            req.Email,
		CompanyName:      req.CompanyName,
		PartnershipTier:  req.PartnershipTier,
		SelectedServices: req.SelectedServices,
		AdditionalInfo:   req.AdditionalInfo,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSONBlob(http.StatusOK, body)
}
