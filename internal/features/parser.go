// internal/features/parser.go
package features

import (
	"fmt"
	"strings"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/platform/validator"
)

// Parts is the structural decomposition of a URL.
type Parts struct {
	// Domain is the raw authority, userinfo and port included.
	Domain string

	// DomainNoPrefix is Domain without a leading "www.".
	DomainNoPrefix string

	// Path and Query are slices of the input text, still percent-encoded.
	Path  string
	Query string
}

// Parse splits rawURL into authority, path and query. The fragment is dropped.
// The parts are cut from the raw text, so their lengths count the characters the
// caller supplied and escapes are never decoded or checked. Only structural
// problems fail: control bytes, unbalanced IPv6 brackets and an authority whose
// host cannot be told apart from its port. Errors wrap domain.ErrMalformedURL.
func Parse(rawURL string) (Parts, error) {
	for i := 0; i < len(rawURL); i++ {
		if c := rawURL[i]; c < 0x20 || c == 0x7f {
			return Parts{}, fmt.Errorf("%w: control byte %#x at offset %d", domain.ErrMalformedURL, c, i)
		}
	}

	_, rest := splitScheme(rawURL)
	rest, _, _ = strings.Cut(rest, "#")

	var p Parts
	rest, p.Query, _ = strings.Cut(rest, "?")
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			p.Domain, rest = rest[:i], rest[i:]
		} else {
			p.Domain, rest = rest, ""
		}
	}
	if err := checkAuthority(p.Domain); err != nil {
		return Parts{}, err
	}
	p.Path = rest
	p.DomainNoPrefix = validator.StripWWW(p.Domain)
	return p, nil
}

// Scheme returns the scheme of rawURL, or "" when it has none.
func Scheme(rawURL string) string {
	scheme, _ := splitScheme(rawURL)
	return scheme
}

// splitScheme cuts a leading "scheme:" off rawURL. A scheme starts with an ASCII
// letter followed by letters, digits, '+', '-' or '.'. Anything else, such as
// "10.0.0.1:8080/x" or ":x", has no scheme and is returned whole.
func splitScheme(rawURL string) (scheme, rest string) {
	for i := 0; i < len(rawURL); i++ {
		c := rawURL[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return "", rawURL
			}
		case c == ':':
			if i == 0 {
				return "", rawURL
			}
			return rawURL[:i], rawURL[i+1:]
		default:
			return "", rawURL
		}
	}
	return "", rawURL
}

// checkAuthority rejects authorities that cannot be split into host and port,
// such as "::::" or "[::1".
func checkAuthority(authority string) error {
	host := authority
	if at := strings.LastIndexByte(host, '@'); at >= 0 {
		host = host[at+1:]
	}

	open, end := strings.IndexByte(host, '['), strings.IndexByte(host, ']')
	if open >= 0 || end >= 0 {
		if open != 0 || end < 0 {
			return fmt.Errorf("%w: unbalanced brackets in %q", domain.ErrMalformedURL, authority)
		}
		return nil
	}

	if colon := strings.LastIndexByte(host, ':'); colon >= 0 && isPort(host[colon+1:]) {
		host = host[:colon]
	}
	if strings.Contains(host, ":") {
		return fmt.Errorf("%w: ambiguous authority %q", domain.ErrMalformedURL, authority)
	}
	return nil
}

// isPort reports whether s is empty or all ASCII digits.
func isPort(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
