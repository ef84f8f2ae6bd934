package validation

import "testing"

func TestValidateKeyword(t *testing.T) {
	tests := []struct {
		keyword string
		want    bool
	}{
		{"seo tools", true},
		{"rank-tracker", true},
		{"keyword research 2026", true},
		{"", false},
		{"double  space", false},
		{" leading", false},
		{"bad;chars", false},
	}

	for _, tt := range tests {
		if got := ValidateKeyword(tt.keyword); got != tt.want {
			t.Errorf("ValidateKeyword(%q) = %v, want %v", tt.keyword, got, tt.want)
		}
	}
}

func TestNormalizeKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SEO Tools", "seo tools"},
		{"  rank   tracker  ", "rank tracker"},
		{"already normal", "already normal"},
	}

	for _, tt := range tests {
		if got := NormalizeKeyword(tt.in); got != tt.want {
			t.Errorf("NormalizeKeyword(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		domain string
		want   bool
	}{
		{"example.com", true},
		{"sub.example.co.uk", true},
		{"localhost", false},
		{"", false},
		{"-bad.com", false},
		{"no spaces.com", false},
	}

	for _, tt := range tests {
		if got := ValidateDomain(tt.domain); got != tt.want {
			t.Errorf("ValidateDomain(%q) = %v, want %v", tt.domain, got, tt.want)
		}
	}
}
