// internal/encoder/encoder.go
package encoder

import (
	"fmt"
	"sort"
	"time"

	"urlfeat/internal/core/domain"
)

// LabelEncoder maps the distinct strings of one column to dense integer codes.
// Classes are kept sorted; class i has code i.
type LabelEncoder struct {
	column  string
	classes []string
	index   map[string]int
}

// Fit learns the sorted, deduplicated classes of values.
func Fit(column string, values []string) *LabelEncoder {
	seen := make(map[string]struct{}, len(values))
	classes := make([]string, 0)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		classes = append(classes, v)
	}
	sort.Strings(classes)
	return newEncoder(column, classes)
}

// FitValues is Fit over table cells. Null cells are learned as the empty string.
func FitValues(column string, values []domain.Value) *LabelEncoder {
	return Fit(column, cellTexts(values))
}

func newEncoder(column string, classes []string) *LabelEncoder {
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return &LabelEncoder{column: column, classes: classes, index: index}
}

// Column returns the name of the column the encoder was fitted on.
func (e *LabelEncoder) Column() string { return e.column }

// Len returns the number of classes.
func (e *LabelEncoder) Len() int { return len(e.classes) }

// Classes returns a copy of the sorted classes.
func (e *LabelEncoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// UnknownCode is the code reserved for values not seen during Fit.
func (e *LabelEncoder) UnknownCode() int { return len(e.classes) }

// Encode returns the code of v or an error wrapping domain.ErrUnseenCategory.
func (e *LabelEncoder) Encode(v string) (int, error) {
	code, ok := e.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: column %q value %q", domain.ErrUnseenCategory, e.column, v)
	}
	return code, nil
}

// EncodeOrReserve returns the code of v, or UnknownCode for unseen values.
func (e *LabelEncoder) EncodeOrReserve(v string) int {
	if code, ok := e.index[v]; ok {
		return code
	}
	return e.UnknownCode()
}

// Inverse returns the class of code.
func (e *LabelEncoder) Inverse(code int) (string, error) {
	if code < 0 || code >= len(e.classes) {
		return "", fmt.Errorf("%w: column %q code %d", domain.ErrUnknownCode, e.column, code)
	}
	return e.classes[code], nil
}

// Transform encodes cells under policy. Null cells are looked up as the empty string.
func (e *LabelEncoder) Transform(values []domain.Value, policy domain.UnknownPolicy) ([]domain.Value, error) {
	out := make([]domain.Value, len(values))
	for i, text := range cellTexts(values) {
		var code int
		if policy == domain.UnknownReserve {
			code = e.EncodeOrReserve(text)
		} else {
			c, err := e.Encode(text)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			code = c
		}
		out[i] = domain.IntValue(int64(code))
	}
	return out, nil
}

// Artifact snapshots the encoder for persistence.
func (e *LabelEncoder) Artifact(runID string, fittedAt time.Time) domain.EncoderArtifact {
	return domain.EncoderArtifact{
		Column:      e.column,
		Classes:     e.Classes(),
		UnknownCode: e.UnknownCode(),
		RunID:       runID,
		FittedAt:    fittedAt.UTC(),
	}
}

// FromArtifact rebuilds an encoder. Classes must be sorted and unique.
func FromArtifact(a domain.EncoderArtifact) (*LabelEncoder, error) {
	if a.Column == "" {
		return nil, fmt.Errorf("%w: encoder artifact without column", domain.ErrArtifactRead)
	}
	for i := 1; i < len(a.Classes); i++ {
		if a.Classes[i-1] >= a.Classes[i] {
			return nil, fmt.Errorf("%w: encoder %q classes not sorted and unique at %d",
				domain.ErrArtifactRead, a.Column, i)
		}
	}
	classes := make([]string, len(a.Classes))
	copy(classes, a.Classes)
	return newEncoder(a.Column, classes), nil
}

func cellTexts(values []domain.Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
