// internal/core/ports/tables.go
package ports

import (
	"context"

	"urlfeat/internal/core/domain"
)

// TableSource produces the input table of a run.
type TableSource interface {
	// Name identifies the source in logs (e.g. a file path).
	Name() string

	// Load reads the whole table.
	Load(ctx context.Context) (*domain.Table, error)
}

// TableSink receives the encoded output table.
type TableSink interface {
	// Name identifies the sink in logs.
	Name() string

	// Write stores tbl.
	Write(ctx context.Context, tbl *domain.Table) error
}
