package service

import (
	"context"

	"github.com/la121/consultants-api/internal/entity"
	"github.com/la121/consultants-api/internal/repository"
)

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	Profiles            int            `json:"profiles"`
	SubmissionsByStatus map[string]int `json:"submissions_by_status"`
	PendingJobs         int            `json:"pending_jobs"`
	PendingReviews      int            `json:"pending_reviews"`
	Applications        int            `json:"applications"`
}

// StatsService collects count-only queries for the dashboard.
type StatsService struct {
	profiles    repository.ProfilesRepository
	submissions repository.SubmissionsRepository
	jobs        repository.JobsRepository
	reviews     repository.ReviewsRepository
}

// NewStatsService constructs a new StatsService.
func NewStatsService(profiles repository.ProfilesRepository, submissions repository.SubmissionsRepository, jobs repository.JobsRepository, reviews repository.ReviewsRepository) *StatsService {
	return &StatsService{
		profiles:    profiles,
		submissions: submissions,
		jobs:        jobs,
		reviews:     reviews,
	}
}

// Dashboard gathers all counters. Queries run sequentially; the admin
// dashboard is not latency sensitive.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{SubmissionsByStatus: make(map[string]int)}

	profiles, err := s.profiles.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.Profiles = profiles

	for _, status := range []string{
		entity.SubmissionStatusNew,
		entity.SubmissionStatusInProgress,
		entity.SubmissionStatusCompleted,
		entity.SubmissionStatusCancelled,
	} {
		count, err := s.submissions.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		stats.SubmissionsByStatus[status] = count
	}

	pendingJobs, err := s.jobs.CountByStatus(ctx, entity.JobStatusPending)
	if err != nil {
		return nil, err
	}
	stats.PendingJobs = pendingJobs

	pendingReviews, err := s.reviews.CountByStatus(ctx, entity.ReviewStatusPending)
	if err != nil {
		return nil, err
	}
	stats.PendingReviews = pendingReviews

	applications, err := s.jobs.CountApplications(ctx)
	if err != nil {
		return nil, err
	}
	stats.Applications = applications

	return stats, nil
}
