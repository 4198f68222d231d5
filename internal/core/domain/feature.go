// internal/core/domain/feature.go
package domain

// FieldSpec declares one field an extractor may emit.
type FieldSpec struct {
	Name string
	Kind Kind

	// Optional fields are null by contract for some valid URLs
	// (e.g. a path without a filename).
	Optional bool
}

// Field is one named value inside a FeatureRecord.
type Field struct {
	Name  string
	Value Value
}

// FeatureRecord is an ordered mapping from feature name to value.
// An empty record means the extractor could not process the URL.
type FeatureRecord struct {
	fields []Field
}

// NewFeatureRecord returns an empty record with room for n fields.
func NewFeatureRecord(n int) FeatureRecord {
	return FeatureRecord{fields: make([]Field, 0, n)}
}

// Set stores v under name, keeping the position of an existing field.
func (r *FeatureRecord) Set(name string, v Value) {
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = v
			return
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: v})
}

// Get returns the value stored under name.
func (r FeatureRecord) Get(name string) (Value, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Len returns the number of fields.
func (r FeatureRecord) Len() int { return len(r.fields) }

// IsEmpty reports whether the record carries no fields.
func (r FeatureRecord) IsEmpty() bool { return len(r.fields) == 0 }

// Fields returns a copy of the fields in insertion order.
func (r FeatureRecord) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}
