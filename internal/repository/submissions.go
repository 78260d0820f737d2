package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/entity"
)

// ErrSubmissionNotFound is returned when no submission matches the identifier.
var ErrSubmissionNotFound = errors.New("submission not found")

// InsertSubmissionInput holds the fields the submission writer persists.
// Status is always set to "new" by the repository.
type InsertSubmissionInput struct {
	ProfileID         uuid.UUID
	FormType          string
	ServiceSelected   *string
	PreferredDatetime *time.Time
	AdditionalNotes   *string
}

// SubmissionsRepository declares persistence operations for form submissions.
type SubmissionsRepository interface {
	Insert(ctx context.Context, input InsertSubmissionInput) (*entity.Submission, error)
	List(ctx context.Context, filter dto.SubmissionFilter) ([]entity.Submission, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status string) (int, error)
}

// PGXSubmissionsRepository implements SubmissionsRepository with pgx.
type PGXSubmissionsRepository struct {
	pool pgxPool
}

// NewPGXSubmissionsRepository instantiates a submissions repository.
func NewPGXSubmissionsRepository(pool *pgxpool.Pool) *PGXSubmissionsRepository {
	return &PGXSubmissionsRepository{pool: pool}
}

const submissionColumns = `id, profile_id, form_type, service_selected, preferred_datetime, additional_notes, status, created_at`

// Insert appends one submission row with status fixed at "new".
func (r *PGXSubmissionsRepository) Insert(ctx context.Context, input InsertSubmissionInput) (*entity.Submission, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO form_submissions (profile_id, form_type, service_selected, preferred_datetime, additional_notes, status)
        VALUES ($1, $2, $3, $4, $5, 'new')
        RETURNING `+submissionColumns+`
    `, input.ProfileID, input.FormType, input.ServiceSelected, input.PreferredDatetime, input.AdditionalNotes)

	submission, err := scanSubmission(row)
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	return submission, nil
}

// List retrieves submissions joined to profile fields, newest first,
// narrowed by the optional filter predicates.
func (r *PGXSubmissionsRepository) List(ctx context.Context, filter dto.SubmissionFilter) ([]entity.Submission, error) {
	query := strings.Builder{}
	query.WriteString(`
        SELECT
            s.id, s.profile_id, s.form_type, s.service_selected, s.preferred_datetime,
            s.additional_notes, s.status, s.created_at,
            p.full_name, p.email, p.phone, p.linkedin_url
        FROM form_submissions s
        JOIN profiles p ON p.id = s.profile_id
    `)

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.FormType != "" {
		clauses = append(clauses, fmt.Sprintf("s.form_type = $%d", idx))
		args = append(args, filter.FormType)
		idx++
	}
	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("s.status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if filter.From != nil {
		clauses = append(clauses, fmt.Sprintf("s.created_at >= $%d", idx))
		args = append(args, *filter.From)
		idx++
	}
	if filter.To != nil {
		clauses = append(clauses, fmt.Sprintf("s.created_at <= $%d", idx))
		args = append(args, *filter.To)
		idx++
	}

	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY s.created_at DESC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	return scanJoinedSubmissions(rows)
}

// UpdateStatus overwrites the status field. Any state may move to any other.
func (r *PGXSubmissionsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.Submission, error) {
	row := r.pool.QueryRow(ctx, `
        UPDATE form_submissions SET status = $1 WHERE id = $2
        RETURNING `+submissionColumns+`
    `, status, id)

	submission, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("update submission status: %w", err)
	}
	return submission, nil
}

// Delete force-removes a submission by id.
func (r *PGXSubmissionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM form_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

// CountByStatus returns the number of submissions holding the given status.
func (r *PGXSubmissionsRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM form_submissions WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return count, nil
}

func scanSubmission(row pgx.Row) (*entity.Submission, error) {
	var (
		s         entity.Submission
		service   sql.NullString
		preferred sql.NullTime
		notes     sql.NullString
	)
	err := row.Scan(&s.ID, &s.ProfileID, &s.FormType, &service, &preferred, &notes, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.ServiceSelected = nullStringToPtr(service)
	s.AdditionalNotes = nullStringToPtr(notes)
	if preferred.Valid {
		ts := preferred.Time
		s.PreferredDatetime = &ts
	}
	return &s, nil
}

func scanJoinedSubmissions(rows pgx.Rows) ([]entity.Submission, error) {
	var submissions []entity.Submission
	for rows.Next() {
		var (
			s         entity.Submission
			service   sql.NullString
			preferred sql.NullTime
			notes     sql.NullString
			profile   entity.SubmissionProfile
			phone     sql.NullString
			linkedin  sql.NullString
		)
		err := rows.Scan(
			&s.ID, &s.ProfileID, &s.FormType, &service, &preferred, &notes, &s.Status, &s.CreatedAt,
			&profile.FullName, &profile.Email, &phone, &linkedin,
		)
		if err != nil {
			return nil, fmt.Errorf("scan submission row: %w", err)
		}
		s.ServiceSelected = nullStringToPtr(service)
		s.AdditionalNotes = nullStringToPtr(notes)
		if preferred.Valid {
			ts := preferred.Time
			s.PreferredDatetime = &ts
		}
		profile.Phone = nullStringToPtr(phone)
		profile.LinkedinURL = nullStringToPtr(linkedin)
		s.Profile = &profile
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return submissions, nil
}

func nullStringToPtr(value sql.NullString) *string {
	if value.Valid {
		val := value.String
		return &val
	}
	return nil
}
