package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/la121/consultants-api/internal/entity"
)

// ErrReviewNotFound is returned when no review matches the identifier.
var ErrReviewNotFound = errors.New("review not found")

// ReviewsRepository declares persistence operations for testimonials.
type ReviewsRepository interface {
	List(ctx context.Context, status string) ([]entity.Review, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Review, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status string) (int, error)
}

// PGXReviewsRepository implements ReviewsRepository with pgx.
type PGXReviewsRepository struct {
	pool pgxPool
}

// NewPGXReviewsRepository instantiates a reviews repository.
func NewPGXReviewsRepository(pool *pgxpool.Pool) *PGXReviewsRepository {
	return &PGXReviewsRepository{pool: pool}
}

const reviewColumns = `id, reviewer_name, content, rating, status, featured, created_at`

// List returns reviews newest first, optionally narrowed by status.
func (r *PGXReviewsRepository) List(ctx context.Context, status string) ([]entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(&review.ID, &review.ReviewerName, &review.Content, &review.Rating,
			&review.Status, &review.Featured, &review.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}

// UpdateStatus overwrites the moderation status.
func (r *PGXReviewsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Review, error) {
	row := r.pool.QueryRow(ctx, `
        UPDATE reviews SET status = $1 WHERE id = $2
        RETURNING `+reviewColumns+`
    `, status, id)

	var review entity.Review
	err := row.Scan(&review.ID, &review.ReviewerName, &review.Content, &review.Rating,
		&review.Status, &review.Featured, &review.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("update review status: %w", err)
	}
	return &review, nil
}

// SetFeatured toggles the featured flag.
func (r *PGXReviewsRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE reviews SET featured = $1 WHERE id = $2`, featured, id)
	if err != nil {
		return fmt.Errorf("set review featured: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// Delete removes a review by id.
func (r *PGXReviewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// CountByStatus returns the number of reviews holding the given status.
func (r *PGXReviewsRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return count, nil
}
