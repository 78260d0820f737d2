package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/entity"
	"github.com/la121/consultants-api/internal/repository"
)

// BlogService covers the public article listing and admin management.
type BlogService struct {
	repo repository.BlogRepository
}

// NewBlogService builds a new BlogService instance.
func NewBlogService(repo repository.BlogRepository) *BlogService {
	return &BlogService{repo: repo}
}

// ListPublished returns publicly visible posts.
func (s *BlogService) ListPublished(ctx context.Context) ([]entity.BlogPost, error) {
	return s.repo.List(ctx, true)
}

// AdminList returns all posts including drafts.
func (s *BlogService) AdminList(ctx context.Context) ([]entity.BlogPost, error) {
	return s.repo.List(ctx, false)
}

// Create provisions an article.
func (s *BlogService) Create(ctx context.Context, req dto.CreateBlogPostRequest) (*entity.BlogPost, error) {
	title := strings.TrimSpace(req.Title)
	slug := strings.TrimSpace(req.Slug)
	if title == "" || slug == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ValidationError{Message: "title, slug and content are required"}
	}
	return s.repo.Create(ctx, title, slug, req.Content, req.Published)
}

// Update patches an article.
func (s *BlogService) Update(ctx context.Context, id string, req dto.UpdateBlogPostRequest) (*entity.BlogPost, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid post id"}
	}
	return s.repo.Update(ctx, postID, req.Title, req.Slug, req.Content, req.Published)
}

// Delete removes an article.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid post id"}
	}
	return s.repo.Delete(ctx, postID)
}
