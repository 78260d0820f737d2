package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/repository"
	"github.com/la121/consultants-api/internal/service"
)

// serviceError maps service and repository errors onto the shared envelope.
// Unrecognized errors fall back to a 500 with the given message.
func serviceError(c echo.Context, err error, fallback string) error {
	var validation service.ValidationError
	if errors.As(err, &validation) {
		return Error(c, http.StatusBadRequest, validation.Message)
	}

	switch {
	case errors.Is(err, repository.ErrProfileNotFound),
		errors.Is(err, repository.ErrSubmissionNotFound),
		errors.Is(err, repository.ErrJobNotFound),
		errors.Is(err, repository.ErrApplicationNotFound),
		errors.Is(err, repository.ErrReviewNotFound),
		errors.Is(err, repository.ErrEbookNotFound),
		errors.Is(err, repository.ErrBlogPostNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicateApplication):
		return Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrCheckoutUnavailable):
		return Error(c, http.StatusBadGateway, err.Error())
	}

	return Error(c, http.StatusInternalServerError, fallback)
}
