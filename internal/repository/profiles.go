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

// ErrProfileNotFound is returned when no profile matches the lookup criteria.
var ErrProfileNotFound = errors.New("profile not found")

// CreateProfileInput holds the contact fields captured on first submission.
type CreateProfileInput struct {
	FullName    string
	Email       string
	Phone       *string
	LinkedinURL *string
	HowFoundUs  *string
}

// ProfilesRepository declares persistence operations for contact profiles.
type ProfilesRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	Create(ctx context.Context, input CreateProfileInput) (*entity.Profile, error)
	List(ctx context.Context) ([]entity.Profile, error)
	Count(ctx context.Context) (int, error)
}

// PGXProfilesRepository implements ProfilesRepository with pgx.
type PGXProfilesRepository struct {
	pool pgxPool
}

// NewPGXProfilesRepository instantiates a profiles repository.
func NewPGXProfilesRepository(pool *pgxpool.Pool) *PGXProfilesRepository {
	return &PGXProfilesRepository{pool: pool}
}

const profileColumns = `id, full_name, email, phone, linkedin_url, how_found_us, created_at, updated_at`

// FindByEmail fetches a profile by email if present. Callers pair this with
// Create in a lookup-then-insert sequence; two concurrent first-time
// submissions for the same email can both miss and both insert.
func (r *PGXProfilesRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email = $1 LIMIT 1`, email)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("query profile by email: %w", err)
	}
	return profile, nil
}

// FindByID retrieves a profile by identifier.
func (r *PGXProfilesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("query profile by id: %w", err)
	}
	return profile, nil
}

// Create inserts a new profile row.
func (r *PGXProfilesRepository) Create(ctx context.Context, input CreateProfileInput) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO profiles (full_name, email, phone, linkedin_url, how_found_us)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+profileColumns+`
    `, input.FullName, input.Email, input.Phone, input.LinkedinURL, input.HowFoundUs)

	profile, err := scanProfile(row)
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return profile, nil
}

// List returns all profiles ordered by creation date (desc).
func (r *PGXProfilesRepository) List(ctx context.Context) ([]entity.Profile, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []entity.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}

// Count returns the total number of profiles.
func (r *PGXProfilesRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return count, nil
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	var profile entity.Profile
	err := row.Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.Phone,
		&profile.LinkedinURL,
		&profile.HowFoundUs,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
