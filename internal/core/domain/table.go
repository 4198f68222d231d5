// internal/core/domain/table.go
package domain

import "fmt"

// Row is one table row, aligned with the table schema.
type Row []Value

// HasNull reports whether any cell is null.
func (r Row) HasNull() bool {
	for _, v := range r {
		if v.IsNull() {
			return true
		}
	}
	return false
}

// Table is a row-major, schema-typed table held in memory.
type Table struct {
	Schema Schema
	Rows   []Row
}

// NewTable returns an empty table with the given schema.
func NewTable(schema Schema) *Table {
	return &Table{Schema: schema}
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.Rows) }

// Append adds rows, rejecting rows whose width differs from the schema.
func (t *Table) Append(rows ...Row) error {
	for i, r := range rows {
		if len(r) != t.Schema.Len() {
			return fmt.Errorf("%w: row %d has %d cells, schema has %d",
				ErrRaggedRow, t.Len()+i, len(r), t.Schema.Len())
		}
	}
	t.Rows = append(t.Rows, rows...)
	return nil
}

// Slice returns a view on rows [start, end). Rows are shared, not copied.
func (t *Table) Slice(start, end int) (*Table, error) {
	if start < 0 || end > t.Len() || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrRowOutOfRange, start, end, t.Len())
	}
	return &Table{Schema: t.Schema, Rows: t.Rows[start:end]}, nil
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]Value, error) {
	idx := t.Schema.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	out := make([]Value, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out, nil
}

// SetColumn overwrites the named column in place and redeclares its kind.
func (t *Table) SetColumn(name string, kind Kind, values []Value) error {
	idx := t.Schema.Index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	if len(values) != len(t.Rows) {
		return fmt.Errorf("%w: column %q got %d values for %d rows",
			ErrRaggedRow, name, len(values), len(t.Rows))
	}
	for i := range t.Rows {
		t.Rows[i][idx] = values[i]
	}
	t.Schema.Columns[idx].Kind = kind
	return nil
}

// Select returns a new table holding only the named columns, in the given order.
func (t *Table) Select(names []string) (*Table, error) {
	idx := make([]int, len(names))
	cols := make([]ColumnSpec, len(names))
	for i, n := range names {
		j := t.Schema.Index(n)
		if j < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, n)
		}
		idx[i] = j
		cols[i] = t.Schema.Columns[j]
	}
	schema, err := NewSchema(cols...)
	if err != nil {
		return nil, err
	}
	out := &Table{Schema: schema, Rows: make([]Row, len(t.Rows))}
	for i, r := range t.Rows {
		nr := make(Row, len(idx))
		for k, j := range idx {
			nr[k] = r[j]
		}
		out.Rows[i] = nr
	}
	return out, nil
}

// Filter keeps the rows for which keep returns true, preserving order.
// It returns the number of rows removed.
func (t *Table) Filter(keep func(Row) bool) int {
	kept := t.Rows[:0]
	for _, r := range t.Rows {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	removed := len(t.Rows) - len(kept)
	t.Rows = kept
	return removed
}
