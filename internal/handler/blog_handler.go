package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/service"
)

// BlogHandler exposes the public article listing and admin management.
type BlogHandler struct {
	blog *service.BlogService
}

// NewBlogHandler creates a new handler instance.
func NewBlogHandler(blog *service.BlogService) *BlogHandler {
	return &BlogHandler{blog: blog}
}

// List handles GET /blog requests.
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.blog.ListPublished(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "failed to list posts")
	}

	return Success(c, http.StatusOK, "", posts)
}

// ListAdmin handles GET /admin/blog requests.
func (h *BlogHandler) ListAdmin(c echo.Context) error {
	posts, err := h.blog.AdminList(c.Request().Context())
	if err != nil {
		return serviceError(c, err, "failed to list posts")
	}

	return Success(c, http.StatusOK, "", posts)
}

// Create handles POST /admin/blog requests.
func (h *BlogHandler) Create(c echo.Context) error {
	var req dto.CreateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	post, err := h.blog.Create(c.Request().Context(), req)
	if err != nil {
		return serviceError(c, err, "failed to create post")
	}

	return Success(c, http.StatusCreated, "post created", post)
}

// Update handles PATCH /admin/blog/:id requests.
func (h *BlogHandler) Update(c echo.Context) error {
	var req dto.UpdateBlogPostRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	post, err := h.blog.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return serviceError(c, err, "failed to update post")
	}

	return Success(c, http.StatusOK, "post updated", post)
}

// Delete handles DELETE /admin/blog/:id requests.
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.blog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(c, err, "failed to delete post")
	}

	return Success(c, http.StatusOK, "post deleted", nil)
}
