package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the contact record behind every form submission. Email is the
// de-duplication key at lookup time; the store carries no unique index on it.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	LinkedinURL *string   `json:"linkedin_url,omitempty"`
	HowFoundUs  *string   `json:"how_found_us,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
