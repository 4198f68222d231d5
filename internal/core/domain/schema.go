// internal/core/domain/schema.go
package domain

import "fmt"

// ColumnSpec declares one table column.
type ColumnSpec struct {
	Name     string
	Kind     Kind
	Role     Role
	Optional bool
}

// Schema is the ordered, explicit column declaration of a Table.
// Encoding decisions are taken from it instead of inspecting values.
type Schema struct {
	Columns []ColumnSpec
}

// NewSchema builds a schema and rejects duplicate names.
func NewSchema(cols ...ColumnSpec) (Schema, error) {
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, dup := seen[c.Name]; dup {
			return Schema{}, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	out := make([]ColumnSpec, len(cols))
	copy(out, cols)
	return Schema{Columns: out}, nil
}

// FeatureColumns prefixes the field specs of one extractor.
func FeatureColumns(prefix string, fields []FieldSpec) []ColumnSpec {
	out := make([]ColumnSpec, 0, len(fields))
	for _, f := range fields {
		out = append(out, ColumnSpec{
			Name:     prefix + f.Name,
			Kind:     f.Kind,
			Role:     RoleFeature,
			Optional: f.Optional,
		})
	}
	return out
}

// Len returns the number of columns.
func (s Schema) Len() int { return len(s.Columns) }

// Names returns the column names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Index returns the position of name or -1.
func (s Schema) Index(name string) int {
	for i, c := range s.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Lookup returns the spec of name.
func (s Schema) Lookup(name string) (ColumnSpec, bool) {
	if i := s.Index(name); i >= 0 {
		return s.Columns[i], true
	}
	return ColumnSpec{}, false
}

// WithRole returns a copy where column name carries role. Unknown names are ignored.
func (s Schema) WithRole(name string, role Role) Schema {
	out := Schema{Columns: make([]ColumnSpec, len(s.Columns))}
	copy(out.Columns, s.Columns)
	if i := out.Index(name); i >= 0 {
		out.Columns[i].Role = role
	}
	return out
}

// Categorical returns the string columns that must be encoded.
// The label column is excluded.
func (s Schema) Categorical() []ColumnSpec {
	var out []ColumnSpec
	for _, c := range s.Columns {
		if c.Kind == KindString && c.Role != RoleLabel {
			out = append(out, c)
		}
	}
	return out
}
