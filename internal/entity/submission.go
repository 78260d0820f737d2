package entity

import (
	"time"

	"github.com/google/uuid"
)

// Form kinds accepted by the intake endpoints.
const (
	FormTypeClientCall   = "client_call"
	FormTypeServiceOrder = "service_order"
	FormTypePartnership  = "partnership"
)

// Submission statuses. Transitions are direct overwrites with no guards;
// completed and cancelled are terminal by convention only.
const (
	SubmissionStatusNew        = "new"
	SubmissionStatusInProgress = "in_progress"
	SubmissionStatusCompleted  = "completed"
	SubmissionStatusCancelled  = "cancelled"
)

// IsValidSubmissionStatus reports whether s is a member of the status enum.
func IsValidSubmissionStatus(s string) bool {
	switch s {
	case SubmissionStatusNew, SubmissionStatusInProgress, SubmissionStatusCompleted, SubmissionStatusCancelled:
		return true
	}
	return false
}

// Submission is one intake event referencing a contact profile.
type Submission struct {
	ID                uuid.UUID  `json:"id"`
	ProfileID         uuid.UUID  `json:"profile_id"`
	FormType          string     `json:"form_type"`
	ServiceSelected   *string    `json:"service_selected,omitempty"`
	PreferredDatetime *time.Time `json:"preferred_datetime,omitempty"`
	AdditionalNotes   *string    `json:"additional_notes,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`

	// Profile is populated on joined admin listings only.
	Profile *SubmissionProfile `json:"profile,omitempty"`
}

// SubmissionProfile carries the profile columns joined into admin listings.
type SubmissionProfile struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	LinkedinURL *string `json:"linkedin_url,omitempty"`
}
