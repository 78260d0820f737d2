package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/service"
)

// SubmissionsAdminHandler exposes the admin view over form submissions.
type SubmissionsAdminHandler struct {
	intake *service.IntakeService
}

// NewSubmissionsAdminHandler creates a new handler instance.
func NewSubmissionsAdminHandler(intake *service.IntakeService) *SubmissionsAdminHandler {
	return &SubmissionsAdminHandler{intake: intake}
}

// List handles GET /admin/submissions requests.
func (h *SubmissionsAdminHandler) List(c echo.Context) error {
	filter := dto.SubmissionFilter{
		FormType: strings.TrimSpace(c.QueryParam("form_type")),
		Status:   strings.TrimSpace(c.QueryParam("status")),
	}

	if fromStr := strings.TrimSpace(c.QueryParam("from")); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid from (use RFC3339)")
		}
		filter.From = &parsed
	}
	if toStr := strings.TrimSpace(c.QueryParam("to")); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid to (use RFC3339)")
		}
		filter.To = &parsed
	}

	submissions, err := h.intake.ListSubmissions(c.Request().Context(), filter)
	if err != nil {
		return serviceError(c, err, "failed to list submissions")
	}

	return Success(c, http.StatusOK, "", submissions)
}

// UpdateStatus handles PATCH /admin/submissions/:id/status requests.
func (h *SubmissionsAdminHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	submission, err := h.intake.UpdateSubmissionStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return serviceError(c, err, "failed to update submission")
	}

	return Success(c, http.StatusOK, "submission updated", submission)
}

// Delete handles DELETE /admin/submissions/:id requests.
func (h *SubmissionsAdminHandler) Delete(c echo.Context) error {
	if err := h.intake.DeleteSubmission(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(c, err, "failed to delete submission")
	}

	return Success(c, http.StatusOK, "submission deleted", nil)
}
