// internal/adapters/input/csv.go
package input

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"urlfeat/internal/core/domain"
	apperrors "urlfeat/internal/platform/errors"
	"urlfeat/internal/platform/logx"
)

// CSVOptions configures a CSVSource.
type CSVOptions struct {
	URLColumn   string
	LabelColumn string

	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// CSVSource loads a delimited file with a header row. The URL column is
// required; the label column is optional and, when present, is marked as the
// label so it is never encoded.
type CSVSource struct {
	path   string
	opts   CSVOptions
	stdin  io.Reader
	logger logx.Logger
}

// NewCSVSource creates a source for path. A path of "-" reads stdin.
func NewCSVSource(path string, opts CSVOptions, logger logx.Logger) *CSVSource {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	if logger == nil {
		logger = logx.NewNop()
	}
	return &CSVSource{
		path:   path,
		opts:   opts,
		stdin:  os.Stdin,
		logger: logger.With("component", "csv-source"),
	}
}

// Name returns the input path.
func (s *CSVSource) Name() string { return s.path }

// Load reads the whole file into a table.
func (s *CSVSource) Load(ctx context.Context) (*domain.Table, error) {
	if s.path == "-" {
		return s.Read(ctx, s.stdin)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.Classify(err), "failed to open input %s", s.path)
	}
	defer f.Close()

	return s.Read(ctx, f)
}

// Read parses CSV from r. Empty cells become nulls.
func (s *CSVSource) Read(ctx context.Context, r io.Reader) (*domain.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = s.opts.Comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: input has no header row", domain.ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	var records [][]string
	for line := 2; ; line++ {
		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d",
				domain.ErrRaggedRow, line, len(rec), len(header))
		}
		records = append(records, rec)
	}

	schema, err := s.schema(header, records)
	if err != nil {
		return nil, err
	}

	tbl := domain.NewTable(schema)
	tbl.Rows = make([]domain.Row, 0, len(records))
	for _, rec := range records {
		row := make(domain.Row, len(rec))
		for j, cell := range rec {
			row[j] = parseCell(cell, schema.Columns[j].Kind)
		}
		tbl.Rows = append(tbl.Rows, row)
	}

	s.logger.Debug("input loaded", "path", s.path, "rows", tbl.Len(), "columns", schema.Len())
	return tbl, nil
}

func (s *CSVSource) schema(header []string, records [][]string) (domain.Schema, error) {
	cols := make([]domain.ColumnSpec, len(header))
	for j, name := range header {
		spec := domain.ColumnSpec{Name: name, Kind: domain.KindString, Role: domain.RolePassthrough}
		switch name {
		case s.opts.URLColumn:
		case s.opts.LabelColumn:
			spec.Role = domain.RoleLabel
		default:
			spec.Kind = inferKind(records, j)
		}
		cols[j] = spec
	}

	schema, err := domain.NewSchema(cols...)
	if err != nil {
		return domain.Schema{}, err
	}
	if schema.Index(s.opts.URLColumn) < 0 {
		return domain.Schema{}, fmt.Errorf("%w: url column %q not in header", domain.ErrMissingColumn, s.opts.URLColumn)
	}
	return schema, nil
}

// inferKind returns KindFloat when every non-empty cell of column j parses as
// a number and at least one does; otherwise KindString.
func inferKind(records [][]string, j int) domain.Kind {
	numeric := false
	for _, rec := range records {
		cell := rec[j]
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return domain.KindString
		}
		numeric = true
	}
	if numeric {
		return domain.KindFloat
	}
	return domain.KindString
}

func parseCell(cell string, kind domain.Kind) domain.Value {
	if cell == "" {
		return domain.NullValue()
	}
	if kind == domain.KindFloat {
		if f, err := strconv.ParseFloat(cell, 64); err == nil {
			return domain.FloatValue(f)
		}
	}
	return domain.StringValue(cell)
}
