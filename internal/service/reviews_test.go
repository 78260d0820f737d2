package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/la121/consultants-api/internal/entity"
)

type mockReviewsRepository struct {
	list          func(ctx context.Context, status string) ([]entity.Review, error)
	updateStatus  func(ctx context.Context, id uuid.UUID, status string) (*entity.Review, error)
	setFeatured   func(ctx context.Context, id uuid.UUID, featured bool) error
	deleteFn      func(ctx context.Context, id uuid.UUID) error
	countByStatus func(ctx context.Context, status string) (int, error)
}

func (m *mockReviewsRepository) List(ctx context.Context, status string) ([]entity.Review, error) {
	if m.list != nil {
		return m.list(ctx, status)
	}
	return nil, errors.New("list not implemented")
}

func (m *mockReviewsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Review, error) {
	if m.updateStatus != nil {
		return m.updateStatus(ctx, id, status)
	}
	return nil, errors.New("updateStatus not implemented")
}

func (m *mockReviewsRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	if m.setFeatured != nil {
		return m.setFeatured(ctx, id, featured)
	}
	return errors.New("setFeatured not implemented")
}

func (m *mockReviewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errors.New("delete not implemented")
}

func (m *mockReviewsRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	if m.countByStatus != nil {
		return m.countByStatus(ctx, status)
	}
	return 0, errors.New("countByStatus not implemented")
}

func TestReviewsService_ListApproved(t *testing.T) {
	repo := &mockReviewsRepository{
		list: func(ctx context.Context, status string) ([]entity.Review, error) {
			if status != entity.ReviewStatusApproved {
				t.Fatalf("expected approved filter, got %q", status)
			}
			return []entity.Review{{ID: uuid.New(), Status: status}}, nil
		},
	}

	reviews, err := NewReviewsService(repo).ListApproved(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
}

func TestReviewsService_UpdateStatus_Validation(t *testing.T) {
	svc := NewReviewsService(&mockReviewsRepository{
		updateStatus: func(ctx context.Context, id uuid.UUID, status string) (*entity.Review, error) {
			return &entity.Review{ID: id, Status: status}, nil
		},
	})

	if _, err := svc.UpdateStatus(context.Background(), uuid.New().String(), "approved"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), uuid.New().String(), "archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if _, err := svc.UpdateStatus(context.Background(), "bogus", "approved"); err == nil {
		t.Fatal("expected error for malformed id")
	}
}

func TestReviewsService_AdminList_InvalidStatus(t *testing.T) {
	svc := NewReviewsService(&mockReviewsRepository{})
	if _, err := svc.AdminList(context.Background(), "archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
