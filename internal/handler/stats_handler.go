package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/service"
)

// StatsHandler exposes the admin dashboard counters.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler creates a new handler instance.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Dashboard handles GET /admin/stats requests.
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.stats.Dashboard(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to load stats")
	}

	return Success(c, http.StatusOK, "", stats)
}
