package dto

import "time"

// SubmissionFilter contains query parameters for the admin submissions listing.
// From and To bound created_at inclusively.
type SubmissionFilter struct {
	FormType string
	Status   string
	From     *time.Time
	To       *time.Time
}

// UpdateStatusRequest carries a status overwrite for any moderated record.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// SetFeaturedRequest toggles the featured flag on postings and reviews.
type SetFeaturedRequest struct {
	Featured bool `json:"featured"`
}
