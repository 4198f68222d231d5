// internal/features/lexical.go
package features

import (
	"strings"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/platform/logx"
	"urlfeat/internal/platform/validator"
)

// Lexical field names.
const (
	FieldDomain             = "domain"
	FieldDomainNoPrefix     = "domainNoPrefix"
	FieldDomainLength       = "domainLength"
	FieldPathLength         = "pathLength"
	FieldQueryLength        = "queryLength"
	FieldNumPathComponents  = "numPathComponents"
	FieldNumQueryComponents = "numQueryComponents"
	FieldHasDigitsInDomain  = "hasDigitsInDomain"
	FieldHasDigitsInPath    = "hasDigitsInPath"
	FieldHasDigitsInQuery   = "hasDigitsInQuery"
)

// LexicalFields is the declared output of LexicalExtractor.
var LexicalFields = []domain.FieldSpec{
	{Name: FieldDomain, Kind: domain.KindString},
	{Name: FieldDomainNoPrefix, Kind: domain.KindString},
	{Name: FieldDomainLength, Kind: domain.KindInt},
	{Name: FieldPathLength, Kind: domain.KindInt},
	{Name: FieldQueryLength, Kind: domain.KindInt},
	{Name: FieldNumPathComponents, Kind: domain.KindInt},
	{Name: FieldNumQueryComponents, Kind: domain.KindInt},
	{Name: FieldHasDigitsInDomain, Kind: domain.KindBool},
	{Name: FieldHasDigitsInPath, Kind: domain.KindBool},
	{Name: FieldHasDigitsInQuery, Kind: domain.KindBool},
}

// LexicalExtractor derives shape and statistics features. It adds a scheme
// before parsing, so "example.com/a" is read as host plus path.
type LexicalExtractor struct {
	logger logx.Logger
}

// NewLexicalExtractor creates a LexicalExtractor.
func NewLexicalExtractor(logger logx.Logger) *LexicalExtractor {
	return &LexicalExtractor{
		logger: logger.With("extractor", "lexical"),
	}
}

func (e *LexicalExtractor) Name() string               { return "lexical" }
func (e *LexicalExtractor) Prefix() string             { return LexicalPrefix }
func (e *LexicalExtractor) Fields() []domain.FieldSpec { return LexicalFields }

// Extract returns the lexical record, or an empty record when the URL does not parse.
func (e *LexicalExtractor) Extract(rawURL string) domain.FeatureRecord {
	normalized := Normalize(rawURL)
	parts, err := Parse(normalized)
	if err != nil {
		e.logger.Warn("lexical extraction failed", "url", normalized, "error", err.Error())
		return domain.NewFeatureRecord(0)
	}
	return lexicalRecord(parts)
}

func lexicalRecord(p Parts) domain.FeatureRecord {
	// numPathComponents counts segments after the leading empty one:
	// "" -> 0, "/" -> 1, "/a/b" -> 2.
	numPath := int64(len(strings.Split(p.Path, "/")) - 1)

	var numQuery int64
	if p.Query != "" {
		numQuery = int64(len(strings.Split(p.Query, "&")))
	}

	rec := domain.NewFeatureRecord(len(LexicalFields))
	rec.Set(FieldDomain, domain.StringValue(p.Domain))
	rec.Set(FieldDomainNoPrefix, domain.StringValue(p.DomainNoPrefix))
	rec.Set(FieldDomainLength, domain.IntValue(length(p.Domain)))
	rec.Set(FieldPathLength, domain.IntValue(length(p.Path)))
	rec.Set(FieldQueryLength, domain.IntValue(length(p.Query)))
	rec.Set(FieldNumPathComponents, domain.IntValue(numPath))
	rec.Set(FieldNumQueryComponents, domain.IntValue(numQuery))
	rec.Set(FieldHasDigitsInDomain, domain.BoolValue(validator.HasDigit(p.Domain)))
	rec.Set(FieldHasDigitsInPath, domain.BoolValue(validator.HasDigit(p.Path)))
	rec.Set(FieldHasDigitsInQuery, domain.BoolValue(validator.HasDigit(p.Query)))
	return rec
}
