package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/la121/consultants-api/internal/dto"
	"github.com/la121/consultants-api/internal/entity"
	"github.com/la121/consultants-api/internal/repository"
)

// JobsService covers the public job board and admin moderation.
type JobsService struct {
	repo repository.JobsRepository
}

// NewJobsService builds a new JobsService instance.
func NewJobsService(repo repository.JobsRepository) *JobsService {
	return &JobsService{repo: repo}
}

// ListBoard returns approved postings for the public board.
func (s *JobsService) ListBoard(ctx context.Context, filter dto.JobBoardFilter) ([]entity.JobPosting, error) {
	return s.repo.ListApproved(ctx, filter)
}

// SubmitPosting validates an employer submission and stores it pending moderation.
func (s *JobsService) SubmitPosting(ctx context.Context, req dto.SubmitJobRequest) (*entity.JobPosting, error) {
	if strings.TrimSpace(req.CompanyName) == "" || strings.TrimSpace(req.CompanyEmail) == "" ||
		strings.TrimSpace(req.JobTitle) == "" || strings.TrimSpace(req.JobLocation) == "" ||
		strings.TrimSpace(req.JobType) == "" || strings.TrimSpace(req.JobDescription) == "" {
		return nil, ValidationError{Message: "company_name, company_email, job_title, job_location, job_type and job_description are required"}
	}

	email, err := normalizeEmail(req.CompanyEmail)
	if err != nil {
		return nil, err
	}
	website, err := normalizeURL(req.CompanyWebsite)
	if err != nil {
		return nil, err
	}
	applicationURL, err := normalizeURL(req.ApplicationURL)
	if err != nil {
		return nil, err
	}

	return s.repo.Insert(ctx, repository.InsertJobInput{
		CompanyName:      strings.TrimSpace(req.CompanyName),
		CompanyEmail:     email,
		CompanyWebsite:   optionalString(website),
		JobTitle:         strings.TrimSpace(req.JobTitle),
		JobLocation:      strings.TrimSpace(req.JobLocation),
		JobType:          strings.TrimSpace(req.JobType),
		SalaryRange:      optionalString(req.SalaryRange),
		JobDescription:   strings.TrimSpace(req.JobDescription),
		Requirements:     optionalString(req.Requirements),
		Benefits:         optionalString(req.Benefits),
		ApplicationEmail: optionalString(req.ApplicationEmail),
		ApplicationURL:   optionalString(applicationURL),
	})
}

// RecordView bumps the view counter for a posting.
func (s *JobsService) RecordView(ctx context.Context, id string) error {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid job id"}
	}
	return s.repo.IncrementViews(ctx, jobID)
}

// Apply creates one application per (user, posting) pair.
func (s *JobsService) Apply(ctx context.Context, userID, jobID string) (*entity.JobApplication, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ValidationError{Message: "invalid user id"}
	}
	jid, err := uuid.Parse(jobID)
	if err != nil {
		return nil, ValidationError{Message: "invalid job id"}
	}
	return s.repo.CreateApplication(ctx, uid, jid)
}

// ListUserApplications returns the caller's applications with posting fields.
func (s *JobsService) ListUserApplications(ctx context.Context, userID string) ([]entity.JobApplication, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ValidationError{Message: "invalid user id"}
	}
	return s.repo.ListApplicationsByUser(ctx, uid)
}

// AdminList returns all postings for moderation, optionally by status.
func (s *JobsService) AdminList(ctx context.Context, status string) ([]entity.JobPosting, error) {
	if status != "" && !entity.IsValidJobStatus(status) {
		return nil, ValidationError{Message: "unknown status"}
	}
	return s.repo.ListAll(ctx, status)
}

// UpdatePostingStatus overwrites a posting's moderation status.
func (s *JobsService) UpdatePostingStatus(ctx context.Context, id, status string) (*entity.JobPosting, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid job id"}
	}
	if !entity.IsValidJobStatus(status) {
		return nil, ValidationError{Message: "status must be one of pending, approved, rejected, expired"}
	}
	return s.repo.UpdateStatus(ctx, jobID, status)
}

// SetPostingFeatured toggles board placement for a posting.
func (s *JobsService) SetPostingFeatured(ctx context.Context, id string, featured bool) error {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid job id"}
	}
	return s.repo.SetFeatured(ctx, jobID, featured)
}

// UpdateApplicationStatus overwrites an application's status.
func (s *JobsService) UpdateApplicationStatus(ctx context.Context, id, status string) (*entity.JobApplication, error) {
	appID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid application id"}
	}
	if !entity.IsValidApplicationStatus(status) {
		return nil, ValidationError{Message: "status must be one of submitted, reviewed, shortlisted, rejected, hired"}
	}
	return s.repo.UpdateApplicationStatus(ctx, appID, status)
}
