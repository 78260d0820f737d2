package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/service"
)

// JobsAdminHandler exposes job moderation endpoints.
type JobsAdminHandler struct {
	jobs *service.JobsService
}

// NewJobsAdminHandler creates a new handler instance.
func NewJobsAdminHandler(jobs *service.JobsService) *JobsAdminHandler {
	return &JobsAdminHandler{jobs: jobs}
}

// List handles GET /admin/jobs requests.
func (h *JobsAdminHandler) List(c echo.Context) error {
	postings, err := h.jobs.AdminList(c.Request().Context(), strings.TrimSpace(c.QueryParam("status")))
	if err != nil {
		return serviceError(c, err, "failed to list jobs")
	}

	return Success(c, http.StatusOK, "", postings)
}

// UpdateStatus handles PATCH /admin/jobs/:id/status requests.
func (h *JobsAdminHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	posting, err := h.jobs.UpdatePostingStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return serviceError(c, err, "failed to update job")
	}

	return Success(c, http.StatusOK, "job updated", posting)
}

// SetFeatured handles PATCH /admin/jobs/:id/featured requests.
func (h *JobsAdminHandler) SetFeatured(c echo.Context) error {
	var req dto.SetFeaturedRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	if err := h.jobs.SetPostingFeatured(c.Request().Context(), c.Param("id"), req.Featured); err != nil {
		return serviceError(c, err, "failed to update job")
	}

	return Success(c, http.StatusOK, "job updated", nil)
}

// UpdateApplicationStatus handles PATCH /admin/applications/:id/status requests.
func (h *JobsAdminHandler) UpdateApplicationStatus(c echo.Context) error {
	var req dto.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	application, err := h.jobs.UpdateApplicationStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return serviceError(c, err, "failed to update application")
	}

	return Success(c, http.StatusOK, "application updated", application)
}
