package service

import (
	"testing"
	"time"
)

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    string
		wantErr bool
	}{
		"lowercases":       {in: "Jane@Example.COM", want: "jane@example.com"},
		"trims whitespace": {in: "  jane@example.com ", want: "jane@example.com"},
		"empty":            {in: "", wantErr: true},
		"missing at":       {in: "janeexample.com", wantErr: true},
		"missing tld":      {in: "jane@example", wantErr: true},
		"leading hyphen":   {in: "jane@-example.com", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := normalizeEmail(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := map[string]struct {
		in      string
		region  string
		want    string
		wantErr bool
	}{
		"e164 passthrough": {in: "+447911123456", region: "GB", want: "+447911123456"},
		"national format":  {in: "07911 123456", region: "GB", want: "+447911123456"},
		"empty optional":   {in: "", region: "GB", want: ""},
		"too short":        {in: "12", region: "GB", wantErr: true},
		"letters":          {in: "call me", region: "GB", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := normalizePhone(tt.in, tt.region)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    string
		wantErr bool
	}{
		"adds scheme":    {in: "linkedin.com/in/jane", want: "https://linkedin.com/in/jane"},
		"forces https":   {in: "http://linkedin.com/in/jane", want: "https://linkedin.com/in/jane"},
		"empty optional": {in: "", want: ""},
		"no host":        {in: "https://", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := normalizeURL(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseDatetime(t *testing.T) {
	rfc, err := parseDatetime("2025-03-01T10:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rfc.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", rfc)
	}

	local, err := parseDatetime("2025-03-01T10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Hour() != 10 || local.Day() != 1 {
		t.Fatalf("unexpected time: %v", local)
	}

	if _, err := parseDatetime("next tuesday"); err == nil {
		t.Fatal("expected error for freeform input")
	}
}
