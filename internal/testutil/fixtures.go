// internal/testutil/fixtures.go
package testutil

import (
	"fmt"
	"strings"
)

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// FixtureURLs are well-formed URLs covering schemes, ports, IP hosts,
// file names and query strings.
var FixtureURLs = []string{
	"http://www.example.com/a/b.exe?x=1&y=2",
	"https://example.com/index.html",
	"ftp://1.2.3.4/x.bin",
	"http://login.bank-secure.net/verify/account.php?id=42",
	"https://sub.domain.co.uk/path/to/file.pdf",
	"http://10.0.0.1:8080/admin/setup.bat",
	"https://www.google.com/search.do?q=go&hl=en",
	"http://cdn.example.org/assets/app.js",
}

// FixtureSchemelessURLs carry no scheme and exercise normalization.
var FixtureSchemelessURLs = []string{
	"example.com/a.html",
	"www.test.io/download/tool.exe",
	"192.168.1.1/router.cgi",
	"10.0.0.1:8080/admin/run.exe",
}

// FixtureMalformedURLs fail the lexical pass: their authority cannot be split
// into host and port.
var FixtureMalformedURLs = []string{
	"::::",
	"http://[::1",
	"http://host:port/x.html",
}

// FixtureLabels contiene las etiquetas de clasificación de los CSV de prueba.
var FixtureLabels = []string{"benign", "phishing", "malware", "defacement"}

// FixtureCSV renders a URL,Classification CSV (with header) over urls,
// cycling through FixtureLabels.
func FixtureCSV(urls []string) string {
	var b strings.Builder
	b.WriteString("URL,Classification\n")
	for i, u := range urls {
		fmt.Fprintf(&b, "%q,%s\n", u, FixtureLabels[i%len(FixtureLabels)])
	}
	return b.String()
}

// FixtureGeneratedURLs returns n distinct well-formed URLs.
func FixtureGeneratedURLs(n int) []string {
	out := make([]string, n)
	for i := range out {
		base := FixtureURLs[i%len(FixtureURLs)]
		out[i] = fmt.Sprintf("%s#row-%d", strings.Replace(base, "example", fmt.Sprintf("example%d", i), 1), i)
	}
	return out
}
