// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
	"strings"
	"unicode"
)

var (
	// Four groups of 1-3 ASCII digits. Octet range is not checked.
	dottedQuadRegex = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{1,3}){3}$`)

	domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
)

// Domain validators

// IsDomain reports whether s is a syntactically valid hostname (not an IP).
func IsDomain(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	if !domainRegex.MatchString(s) {
		return false
	}
	return net.ParseIP(s) == nil
}

// StripWWW removes one leading "www." label.
func StripWWW(domain string) string {
	return strings.TrimPrefix(domain, "www.")
}

// HostOnly drops userinfo and port from an authority string.
// Bracketed IPv6 literals lose their brackets.
func HostOnly(authority string) string {
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		authority = authority[at+1:]
	}
	if strings.HasPrefix(authority, "[") {
		if end := strings.Index(authority, "]"); end > 0 {
			return authority[1:end]
		}
		return authority
	}
	if colon := strings.LastIndex(authority, ":"); colon >= 0 {
		return authority[:colon]
	}
	return authority
}

// Network validators

// IsDottedQuad reports whether s looks like an IPv4 literal: four dot-separated
// groups of one to three digits. "999.999.999.999" matches; this is a shape check.
func IsDottedQuad(s string) bool {
	return dottedQuadRegex.MatchString(s)
}

// IsIP reports whether s is a valid IPv4 or IPv6 address.
func IsIP(s string) bool {
	return net.ParseIP(s) != nil
}

// Generic validators

// HasDigit reports whether s contains any Unicode decimal digit.
func HasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
