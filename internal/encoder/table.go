// internal/encoder/table.go
package encoder

import (
	"fmt"

	"urlfeat/internal/core/domain"
)

// FitTable fits one encoder per categorical column of tbl and replaces each
// column with its codes. The label column is left untouched. Encoders are
// returned in column order.
func FitTable(tbl *domain.Table, labelColumn string) ([]*LabelEncoder, error) {
	var encoders []*LabelEncoder
	for _, col := range categorical(tbl.Schema, labelColumn) {
		values, err := tbl.Column(col.Name)
		if err != nil {
			return nil, err
		}
		enc := FitValues(col.Name, values)
		codes, err := enc.Transform(values, domain.UnknownError)
		if err != nil {
			return nil, err
		}
		if err := tbl.SetColumn(col.Name, domain.KindInt, codes); err != nil {
			return nil, err
		}
		encoders = append(encoders, enc)
	}
	return encoders, nil
}

// TransformTable encodes every categorical column of tbl with the stored
// encoder of the same name.
func TransformTable(tbl *domain.Table, labelColumn string, encoders map[string]*LabelEncoder, policy domain.UnknownPolicy) error {
	for _, col := range categorical(tbl.Schema, labelColumn) {
		enc, ok := encoders[col.Name]
		if !ok {
			return fmt.Errorf("%w: no encoder for column %q", domain.ErrArtifactRead, col.Name)
		}
		values, err := tbl.Column(col.Name)
		if err != nil {
			return err
		}
		codes, err := enc.Transform(values, policy)
		if err != nil {
			return err
		}
		if err := tbl.SetColumn(col.Name, domain.KindInt, codes); err != nil {
			return err
		}
	}
	return nil
}

// Columns lists the columns FitTable would encode for schema.
func Columns(schema domain.Schema, labelColumn string) []string {
	cols := categorical(schema, labelColumn)
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

func categorical(schema domain.Schema, labelColumn string) []domain.ColumnSpec {
	var out []domain.ColumnSpec
	for _, c := range schema.Categorical() {
		if c.Name != labelColumn {
			out = append(out, c)
		}
	}
	return out
}
