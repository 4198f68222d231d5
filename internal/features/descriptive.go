// internal/features/descriptive.go
package features

import (
	"strings"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/platform/logx"
	"urlfeat/internal/platform/validator"
)

// Descriptive field names. Length fields share names with the lexical ones.
const (
	FieldFilename        = "filename"
	FieldFileNamePresent = "fileNamePresent"
	FieldFileExtension   = "fileExtension"
	FieldIsIPAddress     = "isIpAddress"
	FieldFileExecutable  = "fileExecutable"
)

// DescriptiveFields is the declared output of DescriptiveExtractor.
var DescriptiveFields = []domain.FieldSpec{
	{Name: FieldDomainLength, Kind: domain.KindInt},
	{Name: FieldPathLength, Kind: domain.KindInt},
	{Name: FieldQueryLength, Kind: domain.KindInt},
	{Name: FieldNumPathComponents, Kind: domain.KindInt},
	{Name: FieldFilename, Kind: domain.KindString, Optional: true},
	{Name: FieldFileNamePresent, Kind: domain.KindInt},
	{Name: FieldFileExtension, Kind: domain.KindString, Optional: true},
	{Name: FieldIsIPAddress, Kind: domain.KindBool},
	{Name: FieldFileExecutable, Kind: domain.KindBool},
}

// executableExtensions are matched case-sensitively.
var executableExtensions = map[string]bool{
	"exe": true,
	"bin": true,
	"bat": true,
}

// DescriptiveExtractor derives what a URL points at: file name, extension,
// IP literal host. By default it parses the raw string without adding a
// scheme, so a schemeless URL has an empty domain and its host lands in the path.
type DescriptiveExtractor struct {
	logger    logx.Logger
	normalize bool
}

// NewDescriptiveExtractor creates a DescriptiveExtractor. With normalize set,
// URLs go through Normalize first, like the lexical pass.
func NewDescriptiveExtractor(logger logx.Logger, normalize bool) *DescriptiveExtractor {
	return &DescriptiveExtractor{
		logger:    logger.With("extractor", "descriptive"),
		normalize: normalize,
	}
}

func (e *DescriptiveExtractor) Name() string               { return "descriptive" }
func (e *DescriptiveExtractor) Prefix() string             { return DescriptivePrefix }
func (e *DescriptiveExtractor) Fields() []domain.FieldSpec { return DescriptiveFields }

// Extract returns the descriptive record, or an empty record when the URL does not parse.
func (e *DescriptiveExtractor) Extract(rawURL string) domain.FeatureRecord {
	target := rawURL
	if e.normalize {
		target = Normalize(rawURL)
	}
	parts, err := Parse(target)
	if err != nil {
		e.logger.Warn("descriptive extraction failed", "url", target, "error", err.Error())
		return domain.NewFeatureRecord(0)
	}
	return descriptiveRecord(parts)
}

func descriptiveRecord(p Parts) domain.FeatureRecord {
	host := p.DomainNoPrefix

	// Unlike the lexical count this includes the leading empty segment:
	// "" -> 1, "/" -> 2, "/a/b" -> 3.
	segments := strings.Split(p.Path, "/")
	last := segments[len(segments)-1]

	filename := domain.NullValue()
	extension := domain.NullValue()
	var present int64
	executable := false
	if strings.Contains(last, ".") {
		ext := last[strings.LastIndex(last, ".")+1:]
		filename = domain.StringValue(last)
		extension = domain.StringValue(ext)
		present = 1
		executable = executableExtensions[ext]
	}

	rec := domain.NewFeatureRecord(len(DescriptiveFields))
	rec.Set(FieldDomainLength, domain.IntValue(length(host)))
	rec.Set(FieldPathLength, domain.IntValue(length(p.Path)))
	rec.Set(FieldQueryLength, domain.IntValue(length(p.Query)))
	rec.Set(FieldNumPathComponents, domain.IntValue(int64(len(segments))))
	rec.Set(FieldFilename, filename)
	rec.Set(FieldFileNamePresent, domain.IntValue(present))
	rec.Set(FieldFileExtension, extension)
	rec.Set(FieldIsIPAddress, domain.BoolValue(validator.IsDottedQuad(host)))
	rec.Set(FieldFileExecutable, domain.BoolValue(executable))
	return rec
}
