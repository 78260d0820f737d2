package dto

// CreateEbookRequest provisions a catalogue product.
type CreateEbookRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	AccessType    string  `json:"access_type"`
	StripePriceID string  `json:"stripe_price_id"`
	CoverURL      string  `json:"cover_url"`
	FileURL       string  `json:"file_url"`
}

// UpdateEbookRequest carries a partial catalogue update.
type UpdateEbookRequest struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	AccessType    *string  `json:"access_type,omitempty"`
	StripePriceID *string  `json:"stripe_price_id,omitempty"`
	CoverURL      *string  `json:"cover_url,omitempty"`
	FileURL       *string  `json:"file_url,omitempty"`
}

// CheckoutResponse returns the hosted checkout URL to open client-side.
type CheckoutResponse struct {
	URL string `json:"url"`
}
