package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/la121/consultants-api/internal/entity"
)

// ErrEbookNotFound is returned when no e-book matches the identifier.
var ErrEbookNotFound = errors.New("ebook not found")

// CreateEbookInput holds the catalogue fields for a new product.
type CreateEbookInput struct {
	Title         string
	Description   *string
	Price         float64
	AccessType    string
	StripePriceID *string
	CoverURL      *string
	FileURL       *string
}

// UpdateEbookInput carries optional field overwrites; nil means unchanged.
type UpdateEbookInput struct {
	Title         *string
	Description   *string
	Price         *float64
	AccessType    *string
	StripePriceID *string
	CoverURL      *string
	FileURL       *string
}

// EbooksRepository declares persistence operations for the e-book catalogue.
type EbooksRepository interface {
	List(ctx context.Context) ([]entity.Ebook, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ebook, error)
	Create(ctx context.Context, input CreateEbookInput) (*entity.Ebook, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateEbookInput) (*entity.Ebook, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXEbooksRepository implements EbooksRepository with pgx.
type PGXEbooksRepository struct {
	pool pgxPool
}

// NewPGXEbooksRepository instantiates an e-books repository.
func NewPGXEbooksRepository(pool *pgxpool.Pool) *PGXEbooksRepository {
	return &PGXEbooksRepository{pool: pool}
}

const ebookColumns = `id, title, description, price, access_type, stripe_price_id, cover_url, file_url, created_at, updated_at`

// List returns the catalogue ordered by creation date.
func (r *PGXEbooksRepository) List(ctx context.Context) ([]entity.Ebook, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+ebookColumns+` FROM ebooks ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list ebooks: %w", err)
	}
	defer rows.Close()

	var ebooks []entity.Ebook
	for rows.Next() {
		ebook, err := scanEbook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ebook row: %w", err)
		}
		ebooks = append(ebooks, *ebook)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ebooks: %w", err)
	}
	return ebooks, nil
}

// FindByID retrieves one product.
func (r *PGXEbooksRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ebook, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ebookColumns+` FROM ebooks WHERE id = $1`, id)
	ebook, err := scanEbook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEbookNotFound
		}
		return nil, fmt.Errorf("query ebook by id: %w", err)
	}
	return ebook, nil
}

// Create inserts a catalogue product.
func (r *PGXEbooksRepository) Create(ctx context.Context, input CreateEbookInput) (*entity.Ebook, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO ebooks (title, description, price, access_type, stripe_price_id, cover_url, file_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING `+ebookColumns+`
    `, input.Title, input.Description, input.Price, input.AccessType, input.StripePriceID, input.CoverURL, input.FileURL)

	ebook, err := scanEbook(row)
	if err != nil {
		return nil, fmt.Errorf("insert ebook: %w", err)
	}
	return ebook, nil
}

// Update patches the provided fields only.
func (r *PGXEbooksRepository) Update(ctx context.Context, id uuid.UUID, input UpdateEbookInput) (*entity.Ebook, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	appendClause := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if input.Title != nil {
		appendClause("title", *input.Title)
	}
	if input.Description != nil {
		appendClause("description", *input.Description)
	}
	if input.Price != nil {
		appendClause("price", *input.Price)
	}
	if input.AccessType != nil {
		appendClause("access_type", *input.AccessType)
	}
	if input.StripePriceID != nil {
		appendClause("stripe_price_id", *input.StripePriceID)
	}
	if input.CoverURL != nil {
		appendClause("cover_url", *input.CoverURL)
	}
	if input.FileURL != nil {
		appendClause("file_url", *input.FileURL)
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE ebooks SET %s WHERE id = $%d RETURNING `+ebookColumns,
		strings.Join(setClauses, ", "), idx)

	ebook, err := scanEbook(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEbookNotFound
		}
		return nil, fmt.Errorf("update ebook: %w", err)
	}
	return ebook, nil
}

// Delete removes a product by id.
func (r *PGXEbooksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM ebooks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ebook: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrEbookNotFound
	}
	return nil
}

func scanEbook(row pgx.Row) (*entity.Ebook, error) {
	var (
		e        entity.Ebook
		desc     sql.NullString
		priceID  sql.NullString
		coverURL sql.NullString
		fileURL  sql.NullString
	)
	err := row.Scan(&e.ID, &e.Title, &desc, &e.Price, &e.AccessType, &priceID, &coverURL, &fileURL, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Description = nullStringToPtr(desc)
	e.StripePriceID = nullStringToPtr(priceID)
	e.CoverURL = nullStringToPtr(coverURL)
	e.FileURL = nullStringToPtr(fileURL)
	return &e, nil
}
