// internal/flatten/chunk.go
package flatten

import (
	"context"
	"fmt"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/features"
	"urlfeat/internal/platform/logx"
)

// chunkTask flattens one batch of rows. It implements workerpool.Task.
type chunkTask struct {
	index      int
	in         *domain.Table
	urlIdx     int
	extractors []features.Extractor
	logger     logx.Logger
	onDone     func()

	rows     []domain.Row
	failures [2]int
}

func (c *chunkTask) Name() string { return fmt.Sprintf("chunk-%d", c.index) }
func (c *chunkTask) Weight() int  { return c.in.Len() }

// Execute fills c.rows. Each output row is the input row without the URL cell,
// followed by one cell per declared field of each extractor.
func (c *chunkTask) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("chunk %d: %w", c.index, err)
	}

	c.rows = make([]domain.Row, 0, c.in.Len())
	for _, r := range c.in.Rows {
		out := make(domain.Row, 0, c.width(len(r)))
		out = append(out, r[:c.urlIdx]...)
		out = append(out, r[c.urlIdx+1:]...)

		url := r[c.urlIdx]
		for i, ext := range c.extractors {
			var rec domain.FeatureRecord
			if url.IsNull() {
				c.logger.Debug("null url", "extractor", ext.Name(), "chunk", c.index)
			} else {
				rec = ext.Extract(url.String())
			}
			if rec.IsEmpty() && i < len(c.failures) {
				c.failures[i]++
			}
			out = appendRecord(out, rec, ext.Fields())
		}
		c.rows = append(c.rows, out)
	}

	if c.onDone != nil {
		c.onDone()
	}
	return nil
}

func (c *chunkTask) width(inWidth int) int {
	w := inWidth - 1
	for _, ext := range c.extractors {
		w += len(ext.Fields())
	}
	return w
}

// appendRecord lays rec out in the declared field order. Missing fields,
// including every field of an empty record, become null.
func appendRecord(row domain.Row, rec domain.FeatureRecord, fields []domain.FieldSpec) domain.Row {
	for _, spec := range fields {
		v, ok := rec.Get(spec.Name)
		if !ok {
			v = domain.NullValue()
		}
		row = append(row, v)
	}
	return row
}
