package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/la121/consultants-api/internal/entity"
	"github.com/la121/consultants-api/internal/repository"
)

// ReviewsService covers testimonial moderation and the public listing.
type ReviewsService struct {
	repo repository.ReviewsRepository
}

// NewReviewsService builds a new ReviewsService instance.
func NewReviewsService(repo repository.ReviewsRepository) *ReviewsService {
	return &ReviewsService{repo: repo}
}

// ListApproved returns publicly visible reviews.
func (s *ReviewsService) ListApproved(ctx context.Context) ([]entity.Review, error) {
	return s.repo.List(ctx, entity.ReviewStatusApproved)
}

// AdminList returns reviews for moderation, optionally by status.
func (s *ReviewsService) AdminList(ctx context.Context, status string) ([]entity.Review, error) {
	if status != "" && !entity.IsValidReviewStatus(status) {
		return nil, ValidationError{Message: "unknown status"}
	}
	return s.repo.List(ctx, status)
}

// UpdateStatus overwrites a review's moderation status.
func (s *ReviewsService) UpdateStatus(ctx context.Context, id, status string) (*entity.Review, error) {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid review id"}
	}
	if !entity.IsValidReviewStatus(status) {
		return nil, ValidationError{Message: "status must be one of pending, approved, rejected"}
	}
	return s.repo.UpdateStatus(ctx, reviewID, status)
}

// SetFeatured toggles the featured flag.
func (s *ReviewsService) SetFeatured(ctx context.Context, id string, featured bool) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid review id"}
	}
	return s.repo.SetFeatured(ctx, reviewID, featured)
}

// Delete removes a review.
func (s *ReviewsService) Delete(ctx context.Context, id string) error {
	reviewID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid review id"}
	}
	return s.repo.Delete(ctx, reviewID)
}
