package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StripeClient opens hosted checkout sessions via the Stripe HTTP API.
type StripeClient struct {
	client     *http.Client
	baseURL    string
	secretKey  string
	successURL string
	cancelURL  string
}

// NewStripeClient builds a Stripe client. baseURL defaults to the public API
// when empty.
func NewStripeClient(client *http.Client, baseURL, secretKey, successURL, cancelURL string) *StripeClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}
	return &StripeClient{
		client:     client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateSession opens a payment-mode checkout session for the price and
// returns the hosted page URL.
func (c *StripeClient) CreateSession(ctx context.Context, priceID string) (string, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][price]", priceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", c.successURL)
	form.Set("cancel_url", c.cancelURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("checkout request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("payment provider error (%d): %s", resp.StatusCode, body)
	}

	var session struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("could not decode checkout response: %w", err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("checkout session missing url")
	}
	return session.URL, nil
}
