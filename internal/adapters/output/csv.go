// internal/adapters/output/csv.go
package output

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"urlfeat/internal/core/domain"
)

// WriteTableCSV writes tbl with a header row. Nulls render as empty cells,
// booleans as true/false.
func WriteTableCSV(w io.Writer, tbl *domain.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tbl.Schema.Names()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, tbl.Schema.Len())
	for i, row := range tbl.Rows {
		for j, v := range row {
			record[j] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// CSVSink writes the output table to a file, or to stdout when path is "-".
type CSVSink struct {
	path   string
	stdout io.Writer
}

// NewCSVSink creates a sink for path.
func NewCSVSink(path string) *CSVSink {
	return &CSVSink{path: path, stdout: os.Stdout}
}

// Name returns the destination path.
func (s *CSVSink) Name() string { return s.path }

// Write stores tbl at the sink's path, creating parent directories.
func (s *CSVSink) Write(ctx context.Context, tbl *domain.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.path == "" || s.path == "-" {
		return WriteTableCSV(s.stdout, tbl)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteTableCSV(f, tbl); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
