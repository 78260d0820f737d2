package service

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultPhoneRegion = "GB"

// ValidationError indicates that the submitted payload is invalid. The form
// collector blocks the write and reports the message to the caller.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// normalizeEmail lowercases and validates the address, checking that the
// domain survives an IDNA round trip.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || !emailPattern.MatchString(email) {
		return "", ValidationError{Message: "invalid email address"}
	}
	parts := strings.SplitN(email, "@", 2)
	domain := parts[1]
	if !isDomainValid(domain) {
		return "", ValidationError{Message: "invalid email domain"}
	}
	if ascii, err := idnaProfile.ToASCII(domain); err != nil || ascii == "" {
		return "", ValidationError{Message: "invalid email domain"}
	}
	return email, nil
}

// normalizePhone validates the number and formats it as E.164. Empty input
// is returned as-is so optional fields pass through.
func normalizePhone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if region == "" {
		region = defaultPhoneRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", ValidationError{Message: "invalid phone number"}
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return "", ValidationError{Message: "invalid phone number"}
	}
	return phonenumbers.Format(number, phonenumbers.E164), nil
}

// normalizeURL forces https and rejects unparsable input. Empty input passes
// through so optional fields stay optional.
func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ValidationError{Message: "invalid url"}
	}
	u.Scheme = "https"
	return u.String(), nil
}

// parseDatetime accepts RFC3339 or the HTML datetime-local shape the forms post.
func parseDatetime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	ts, err := time.Parse("2006-01-02T15:04", raw)
	if err != nil {
		return time.Time{}, ValidationError{Message: "invalid preferred_datetime (use RFC3339 or YYYY-MM-DDTHH:MM)"}
	}
	return ts, nil
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
