// Package features derives per-URL feature records: a lexical pass describing
// the shape of the URL and a descriptive pass describing what it points at.
package features

// DefaultScheme is prepended to URLs that carry no scheme.
const DefaultScheme = "http"

// Normalize returns rawURL unchanged when it starts with a scheme, and
// "http://"+rawURL otherwise. It never validates the scheme itself.
func Normalize(rawURL string) string {
	if Scheme(rawURL) != "" {
		return rawURL
	}
	return DefaultScheme + "://" + rawURL
}
