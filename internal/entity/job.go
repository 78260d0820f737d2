package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job posting moderation statuses.
const (
	JobStatusPending  = "pending"
	JobStatusApproved = "approved"
	JobStatusRejected = "rejected"
	JobStatusExpired  = "expired"
)

// IsValidJobStatus reports whether s is a member of the posting status enum.
func IsValidJobStatus(s string) bool {
	switch s {
	case JobStatusPending, JobStatusApproved, JobStatusRejected, JobStatusExpired:
		return true
	}
	return false
}

// Job application statuses.
const (
	ApplicationStatusSubmitted   = "submitted"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

// IsValidApplicationStatus reports whether s is a member of the application status enum.
func IsValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusHired:
		return true
	}
	return false
}

// JobPosting is an employer-submitted listing on the job board.
type JobPosting struct {
	ID               uuid.UUID `json:"id"`
	CompanyName      string    `json:"company_name"`
	CompanyEmail     string    `json:"company_email"`
	CompanyWebsite   *string   `json:"company_website,omitempty"`
	JobTitle         string    `json:"job_title"`
	JobLocation      string    `json:"job_location"`
	JobType          string    `json:"job_type"`
	SalaryRange      *string   `json:"salary_range,omitempty"`
	JobDescription   string    `json:"job_description"`
	Requirements     *string   `json:"requirements,omitempty"`
	Benefits         *string   `json:"benefits,omitempty"`
	ApplicationEmail *string   `json:"application_email,omitempty"`
	ApplicationURL   *string   `json:"application_url,omitempty"`
	Status           string    `json:"status"`
	Featured         bool      `json:"featured"`
	ViewsCount       int       `json:"views_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// JobApplication links a registered user to a posting, unique per pair.
type JobApplication struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Posting fields joined into the applicant dashboard listing.
	JobTitle    *string `json:"job_title,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	JobLocation *string `json:"job_location,omitempty"`
}
