package entity

import (
	"time"

	"github.com/google/uuid"
)

// E-book access types.
const (
	EbookAccessFree = "free"
	EbookAccessPaid = "paid"
)

// Ebook is a catalogue product, optionally sold through hosted checkout.
type Ebook struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	Price         float64   `json:"price"`
	AccessType    string    `json:"access_type"`
	StripePriceID *string   `json:"stripe_price_id,omitempty"`
	CoverURL      *string   `json:"cover_url,omitempty"`
	FileURL       *string   `json:"file_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
