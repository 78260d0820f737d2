package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review moderation statuses.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// IsValidReviewStatus reports whether s is a member of the review status enum.
func IsValidReviewStatus(s string) bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// Review is a client testimonial awaiting or past moderation.
type Review struct {
	ID           uuid.UUID `json:"id"`
	ReviewerName string    `json:"reviewer_name"`
	Content      string    `json:"content"`
	Rating       int       `json:"rating"`
	Status       string    `json:"status"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}
