package dto

// BookCallRequest captures the call-booking form payload.
type BookCallRequest struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	LinkedinURL       string `json:"linkedin_url"`
	HowFoundUs        string `json:"how_found_us"`
	ServiceInterest   string `json:"service_interest"`
	PreferredDatetime string `json:"preferred_datetime"`
	AdditionalNotes   string `json:"additional_notes"`
}

// ServiceOrderRequest captures the service-order form payload.
type ServiceOrderRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	LinkedinURL     string `json:"linkedin_url"`
	HowFoundUs      string `json:"how_found_us"`
	ServiceSelected string `json:"service_selected"`
	AdditionalNotes string `json:"additional_notes"`
}

// PartnershipRequest captures the partnership-inquiry form payload.
type PartnershipRequest struct {
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	CompanyName         string `json:"company_name"`
	LinkedinURL         string `json:"linkedin_url"`
	HowFoundUs          string `json:"how_found_us"`
	PartnershipInterest string `json:"partnership_interest"`
}

// PartnershipEmailRequest is the notification dispatcher payload. It mirrors
// the shape posted by the partnership form, not the stored submission.
type PartnershipEmailRequest struct {
	FullName         string   `json:"full_name"`
	Email            string   `json:"email"`
	CompanyName      string   `json:"company_name"`
	PartnershipTier  string   `json:"partnership_tier"`
	SelectedServices []string `json:"selected_services"`
	AdditionalInfo   string   `json:"additional_info,omitempty"`
}
