package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"
)

// PartnershipNotification carries the fields rendered into the partnership
// enquiry email.
type PartnershipNotification struct {
	FullName         string   `json:"full_name"`
	Email            string   `json:"email"`
	CompanyName      string   `json:"company_name"`
	PartnershipTier  string   `json:"partnership_tier,omitempty"`
	SelectedServices []string `json:"selected_services,omitempty"`
	AdditionalInfo   string   `json:"additional_info,omitempty"`
}

// Sender delivers notification emails through a provider.
type Sender interface {
	SendPartnership(ctx context.Context, n PartnershipNotification) ([]byte, error)
}

// ResendClient posts emails to the Resend HTTP API.
type ResendClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	from    string
	to      []string
}

// NewResendClient builds a Resend client. baseURL defaults to the public API
// when empty.
func NewResendClient(client *http.Client, baseURL, apiKey, from string, to []string) *ResendClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return &ResendClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		from:    from,
		to:      to,
	}
}

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendPartnership renders and sends the enquiry email. The provider's raw
// response body is returned so callers can relay it verbatim.
func (c *ResendClient) SendPartnership(ctx context.Context, n PartnershipNotification) ([]byte, error) {
	payload := resendEmail{
		From:    c.from,
		To:      c.to,
		Subject: fmt.Sprintf("New Partnership Inquiry from %s", n.CompanyName),
		HTML:    renderPartnershipHTML(n),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read email response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("email provider error (%d): %s", resp.StatusCode, respBody)
	}

	return respBody, nil
}

func renderPartnershipHTML(n PartnershipNotification) string {
	var b strings.Builder
	b.WriteString("<h2>New Partnership Inquiry</h2>")
	b.WriteString("<p><strong>Name:</strong> " + html.EscapeString(n.FullName) + "</p>")
	b.WriteString("<p><strong>Email:</strong> " + html.EscapeString(n.Email) + "</p>")
	b.WriteString("<p><strong>Company:</strong> " + html.EscapeString(n.CompanyName) + "</p>")
	if n.PartnershipTier != "" {
		b.WriteString("<p><strong>Tier:</strong> " + html.EscapeString(n.PartnershipTier) + "</p>")
	}
	if len(n.SelectedServices) > 0 {
		b.WriteString("<p><strong>Services:</strong> " + html.EscapeString(strings.Join(n.SelectedServices, ", ")) + "</p>")
	}
	if n.AdditionalInfo != "" {
		b.WriteString("<p><strong>Additional information:</strong></p>")
		b.WriteString("<p>" + html.EscapeString(n.AdditionalInfo) + "</p>")
	}
	return b.String()
}

var _ Sender = (*ResendClient)(nil)
