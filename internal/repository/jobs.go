package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/entity"
)

var (
	// ErrJobNotFound is returned when no posting matches the identifier.
	ErrJobNotFound = errors.New("job posting not found")
	// ErrApplicationNotFound is returned when no application matches the identifier.
	ErrApplicationNotFound = errors.New("job application not found")
	// ErrDuplicateApplication is returned when a (user, posting) pair already exists.
	ErrDuplicateApplication = errors.New("application already exists for this job")
)

// InsertJobInput holds the employer-submitted posting fields. Status is
// always set to "pending" by the repository.
type InsertJobInput struct {
	CompanyName      string
	CompanyEmail     string
	CompanyWebsite   *string
	JobTitle         string
	JobLocation      string
	JobType          string
	SalaryRange      *string
	JobDescription   string
	Requirements     *string
	Benefits         *string
	ApplicationEmail *string
	ApplicationURL   *string
}

// JobsRepository declares persistence operations for postings and applications.
type JobsRepository interface {
	Insert(ctx context.Context, input InsertJobInput) (*entity.JobPosting, error)
	ListApproved(ctx context.Context, filter dto.JobBoardFilter) ([]entity.JobPosting, error)
	ListAll(ctx context.Context, status string) ([]entity.JobPosting, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.JobPosting, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	CreateApplication(ctx context.Context, userID, jobID uuid.UUID) (*entity.JobApplication, error)
	ListApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]entity.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*entity.JobApplication, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	CountApplications(ctx context.Context) (int, error)
}

// PGXJobsRepository implements JobsRepository with pgx.
type PGXJobsRepository struct {
	pool pgxPool
}

// NewPGXJobsRepository instantiates a jobs repository.
func NewPGXJobsRepository(pool *pgxpool.Pool) *PGXJobsRepository {
	return &PGXJobsRepository{pool: pool}
}

const jobColumns = `id, company_name, company_email, company_website, job_title, job_location, job_type,
        salary_range, job_description, requirements, benefits, application_email, application_url,
        status, featured, views_count, created_at, updated_at`

// Insert stores an employer submission awaiting moderation.
func (r *PGXJobsRepository) Insert(ctx context.Context, input InsertJobInput) (*entity.JobPosting, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO job_postings (
            company_name, company_email, company_website, job_title, job_location, job_type,
            salary_range, job_description, requirements, benefits, application_email, application_url,
            status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending')
        RETURNING `+jobColumns+`
    `,
		input.CompanyName, input.CompanyEmail, input.CompanyWebsite, input.JobTitle,
		input.JobLocation, input.JobType, input.SalaryRange, input.JobDescription,
		input.Requirements, input.Benefits, input.ApplicationEmail, input.ApplicationURL,
	)

	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("insert job posting: %w", err)
	}
	return job, nil
}

// ListApproved returns board-visible postings, featured first then newest.
func (r *PGXJobsRepository) ListApproved(ctx context.Context, filter dto.JobBoardFilter) ([]entity.JobPosting, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT ` + jobColumns + ` FROM job_postings WHERE status = 'approved'`)

	var (
		args []any
		idx  = 1
	)

	if filter.Q != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Q)
		query.WriteString(fmt.Sprintf(" AND (job_title ILIKE $%d OR company_name ILIKE $%d OR job_description ILIKE $%d)", idx, idx+1, idx+2))
		args = append(args, pattern, pattern, pattern)
		idx += 3
	}
	if filter.Location != "" {
		query.WriteString(fmt.Sprintf(" AND job_location ILIKE $%d", idx))
		args = append(args, fmt.Sprintf("%%%s%%", filter.Location))
		idx++
	}
	if filter.JobType != "" {
		query.WriteString(fmt.Sprintf(" AND job_type = $%d", idx))
		args = append(args, filter.JobType)
		idx++
	}

	query.WriteString(" ORDER BY featured DESC, created_at DESC")

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list approved jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// ListAll returns every posting for moderation, optionally narrowed by status.
func (r *PGXJobsRepository) ListAll(ctx context.Context, status string) ([]entity.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM job_postings`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// UpdateStatus overwrites the moderation status.
func (r *PGXJobsRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.JobPosting, error) {
	row := r.pool.QueryRow(ctx, `
        UPDATE job_postings SET status = $1, updated_at = NOW() WHERE id = $2
        RETURNING `+jobColumns+`
    `, status, id)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("update job status: %w", err)
	}
	return job, nil
}

// SetFeatured toggles board placement for a posting.
func (r *PGXJobsRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE job_postings SET featured = $1, updated_at = NOW() WHERE id = $2`, featured, id)
	if err != nil {
		return fmt.Errorf("set job featured: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

// IncrementViews bumps the posting view counter.
func (r *PGXJobsRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE job_postings SET views_count = views_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment job views: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

// CreateApplication inserts one application per (user, posting) pair. The
// unique constraint is the sole enforcement; a second attempt surfaces as
// ErrDuplicateApplication and no second row is created.
func (r *PGXJobsRepository) CreateApplication(ctx context.Context, userID, jobID uuid.UUID) (*entity.JobApplication, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO job_applications (user_id, job_id, status)
        VALUES ($1, $2, 'submitted')
        RETURNING id, user_id, job_id, status, created_at, updated_at
    `, userID, jobID)

	var app entity.JobApplication
	if err := row.Scan(&app.ID, &app.UserID, &app.JobID, &app.Status, &app.CreatedAt, &app.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateApplication, pgErr)
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return &app, nil
}

// ListApplicationsByUser returns the caller's applications joined to posting fields.
func (r *PGXJobsRepository) ListApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]entity.JobApplication, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT a.id, a.user_id, a.job_id, a.status, a.created_at, a.updated_at,
               j.job_title, j.company_name, j.job_location
        FROM job_applications a
        JOIN job_postings j ON j.id = a.job_id
        WHERE a.user_id = $1
        ORDER BY a.created_at DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []entity.JobApplication
	for rows.Next() {
		var (
			app      entity.JobApplication
			title    sql.NullString
			company  sql.NullString
			location sql.NullString
		)
		err := rows.Scan(&app.ID, &app.UserID, &app.JobID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&title, &company, &location)
		if err != nil {
			return nil, fmt.Errorf("scan application row: %w", err)
		}
		app.JobTitle = nullStringToPtr(title)
		app.CompanyName = nullStringToPtr(company)
		app.JobLocation = nullStringToPtr(location)
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return apps, nil
}

// UpdateApplicationStatus overwrites the application status.
func (r *PGXJobsRepository) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string) (*entity.JobApplication, error) {
	row := r.pool.QueryRow(ctx, `
        UPDATE job_applications SET status = $1, updated_at = NOW() WHERE id = $2
        RETURNING id, user_id, job_id, status, created_at, updated_at
    `, status, id)

	var app entity.JobApplication
	if err := row.Scan(&app.ID, &app.UserID, &app.JobID, &app.Status, &app.CreatedAt, &app.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return &app, nil
}

// CountByStatus returns the number of postings holding the given status.
func (r *PGXJobsRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return count, nil
}

// CountApplications returns the total number of applications.
func (r *PGXJobsRepository) CountApplications(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return count, nil
}

func scanJob(row pgx.Row) (*entity.JobPosting, error) {
	var (
		j        entity.JobPosting
		website  sql.NullString
		salary   sql.NullString
		reqs     sql.NullString
		benefits sql.NullString
		appEmail sql.NullString
		appURL   sql.NullString
	)
	err := row.Scan(
		&j.ID, &j.CompanyName, &j.CompanyEmail, &website, &j.JobTitle, &j.JobLocation, &j.JobType,
		&salary, &j.JobDescription, &reqs, &benefits, &appEmail, &appURL,
		&j.Status, &j.Featured, &j.ViewsCount, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.CompanyWebsite = nullStringToPtr(website)
	j.SalaryRange = nullStringToPtr(salary)
	j.Requirements = nullStringToPtr(reqs)
	j.Benefits = nullStringToPtr(benefits)
	j.ApplicationEmail = nullStringToPtr(appEmail)
	j.ApplicationURL = nullStringToPtr(appURL)
	return &j, nil
}

func scanJobs(rows pgx.Rows) ([]entity.JobPosting, error) {
	var jobs []entity.JobPosting
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, nil
}
