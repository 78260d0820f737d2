package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/middleware"
	"github.com/la121/consultants-api/internal/service"
)

// JobsHandler exposes the public job board endpoints.
type JobsHandler struct {
	jobs *service.JobsService
}

// NewJobsHandler creates a new handler instance.
func NewJobsHandler(jobs *service.JobsService) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// List handles GET /jobs requests.
func (h *JobsHandler) List(c echo.Context) error {
	filter := dto.JobBoardFilter{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Location: strings.TrimSpace(c.QueryParam("location")),
		JobType:  strings.TrimSpace(c.QueryParam("type")),
	}

	postings, err := h.jobs.ListBoard(c.Request().Context(), filter)
	if err != nil {
		return serviceError(c, err, "failed to list jobs")
	}

	return Success(c, http.StatusOK, "", postings)
}

// Submit handles POST /jobs requests.
func (h *JobsHandler) Submit(c echo.Context) error {
	var req dto.SubmitJobRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	posting, err := h.jobs.SubmitPosting(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "failed to submit job")
	}

	return Success(c, http.StatusCreated, "job submitted for review", posting)
}

// RecordView handles POST /jobs/:id/view requests.
func (h *JobsHandler) RecordView(c echo.Context) error {
	if err := h.jobs.RecordView(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(c, err, "failed to record view")
	}

	return Success(c, http.StatusOK, "", nil)
}

// Apply handles POST /jobs/:id/apply requests.
func (h *JobsHandler) Apply(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return Error(c, http.StatusUnauthorized, "missing user identity")
	}

	application, err := h.jobs.Apply(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return serviceError(c, err, "failed to apply")
	}

	return Success(c, http.StatusCreated, "application submitted", application)
}

// MyApplications handles GET /me/applications requests.
func (h *JobsHandler) MyApplications(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return Error(c, http.StatusUnauthorized, "missing user identity")
	}

	applications, err := h.jobs.ListUserApplications(c.Request().Context(), userID)
	if err != nil {
		return serviceError(c, err, "failed to list applications")
	}

	return Success(c, http.StatusOK, "", applications)
}
