// internal/features/extractor.go
package features

import (
	"unicode/utf8"

	"urlfeat/internal/core/domain"
)

// Column prefixes applied when a record is flattened into table columns.
const (
	LexicalPrefix     = "Lexical_"
	DescriptivePrefix = "Descriptive_"
)

// Extractor turns one URL into a FeatureRecord. Implementations are pure apart
// from logging and safe for concurrent use. A failed extraction yields an empty
// record, never an error.
type Extractor interface {
	// Name identifies the extractor in logs ("lexical", "descriptive").
	Name() string

	// Prefix is prepended to every field name when flattening.
	Prefix() string

	// Fields declares every field Extract can emit, in column order.
	Fields() []domain.FieldSpec

	// Extract derives the record for rawURL.
	Extract(rawURL string) domain.FeatureRecord
}

// length counts characters, not bytes.
func length(s string) int64 {
	return int64(utf8.RuneCountInString(s))
}
