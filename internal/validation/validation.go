package validation

import (
	"regexp"
	"strings"
)

// KeywordPattern defines the valid search-keyword format: words of letters,
// digits and hyphens separated by single spaces.
var KeywordPattern = regexp.MustCompile(`^[\p{L}\p{N}-]+( [\p{L}\p{N}-]+)*$`)

// hostnamePattern matches a bare hostname after normalization.
var hostnamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)

// ValidateKeyword checks if a keyword matches the allowed pattern.
func ValidateKeyword(keyword string) bool {
	if keyword == "" || len(keyword) > 200 {
		return false
	}
	return KeywordPattern.MatchString(keyword)
}

// NormalizeKeyword lowercases a keyword and collapses surrounding whitespace
// so deduplication is case-insensitive.
func NormalizeKeyword(keyword string) string {
	return strings.Join(strings.Fields(strings.ToLower(keyword)), " ")
}

// ValidateDomain checks that a normalized domain looks like a hostname with
// at least one dot. Callers normalize with seo.NormalizeDomain first.
func ValidateDomain(domain string) bool {
	if domain == "" || len(domain) > 253 {
		return false
	}
	return hostnamePattern.MatchString(domain)
}
