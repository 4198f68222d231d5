// internal/flatten/flatten.go
package flatten

import (
	"context"
	"fmt"
	"sync"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/features"
	"urlfeat/internal/platform/logx"
	"urlfeat/internal/platform/workerpool"
)

const (
	// DefaultChunkSize is the number of rows extracted per batch.
	DefaultChunkSize = 1000

	// DefaultURLColumn is the input column holding the URLs.
	DefaultURLColumn = "URL"
)

// Options configures a Flattener.
type Options struct {
	ChunkSize int
	URLColumn string

	// Workers > 1 processes chunks concurrently.
	Workers   int
	Scheduler string

	NormalizeDescriptive bool
}

// Progress is called after each chunk with the number of finished chunks.
type Progress func(done, total int)

// Stats summarizes one Flatten call.
type Stats struct {
	Rows                int
	Chunks              int
	LexicalFailures     int
	DescriptiveFailures int
}

// Flattener runs both extractors over a table in fixed-size chunks and
// replaces the URL column with the prefixed feature columns.
type Flattener struct {
	opts       Options
	extractors []features.Extractor
	logger     logx.Logger
}

// New validates opts and builds a Flattener.
func New(opts Options, logger logx.Logger) (*Flattener, error) {
	if opts.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidChunkSize, opts.ChunkSize)
	}
	if opts.URLColumn == "" {
		opts.URLColumn = DefaultURLColumn
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if logger == nil {
		logger = logx.NewNop()
	}

	return &Flattener{
		opts: opts,
		extractors: []features.Extractor{
			features.NewLexicalExtractor(logger),
			features.NewDescriptiveExtractor(logger, opts.NormalizeDescriptive),
		},
		logger: logger.With("component", "flattener"),
	}, nil
}

// OutputSchema returns the schema Flatten produces for input schema in:
// every input column except the URL column, then the lexical columns, then
// the descriptive columns.
func (f *Flattener) OutputSchema(in domain.Schema) (domain.Schema, error) {
	if in.Index(f.opts.URLColumn) < 0 {
		return domain.Schema{}, fmt.Errorf("%w: url column %q", domain.ErrMissingColumn, f.opts.URLColumn)
	}

	cols := make([]domain.ColumnSpec, 0, in.Len()+len(features.LexicalFields)+len(features.DescriptiveFields))
	for _, c := range in.Columns {
		if c.Name != f.opts.URLColumn {
			cols = append(cols, c)
		}
	}
	for _, ext := range f.extractors {
		cols = append(cols, domain.FeatureColumns(ext.Prefix(), ext.Fields())...)
	}
	return domain.NewSchema(cols...)
}

// Flatten extracts features for every row of in. Row order is preserved for
// any chunk size and worker count. Rows whose URL fails to parse get null
// feature cells; they are counted in Stats and left for the caller to drop.
func (f *Flattener) Flatten(ctx context.Context, in *domain.Table, progress Progress) (*domain.Table, Stats, error) {
	schema, err := f.OutputSchema(in.Schema)
	if err != nil {
		return nil, Stats{}, err
	}
	out := domain.NewTable(schema)
	stats := Stats{Rows: in.Len()}
	if in.Len() == 0 {
		return out, stats, nil
	}

	tasks, err := f.chunkTasks(in)
	if err != nil {
		return nil, Stats{}, err
	}
	stats.Chunks = len(tasks)

	var mu sync.Mutex
	done := 0
	for _, t := range tasks {
		t.onDone = func() {
			if progress == nil {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			done++
			progress(done, len(tasks))
		}
	}

	f.logger.Debug("flattening",
		"rows", in.Len(),
		"chunks", len(tasks),
		"chunk_size", f.opts.ChunkSize,
		"workers", f.opts.Workers,
	)

	if err := f.run(ctx, tasks); err != nil {
		return nil, Stats{}, err
	}

	for _, t := range tasks {
		if err := out.Append(t.rows...); err != nil {
			return nil, Stats{}, fmt.Errorf("chunk %d: %w", t.index, err)
		}
		stats.LexicalFailures += t.failures[0]
		stats.DescriptiveFailures += t.failures[1]
	}
	return out, stats, nil
}

func (f *Flattener) chunkTasks(in *domain.Table) ([]*chunkTask, error) {
	urlIdx := in.Schema.Index(f.opts.URLColumn)
	size := f.opts.ChunkSize

	tasks := make([]*chunkTask, 0, (in.Len()+size-1)/size)
	for start := 0; start < in.Len(); start += size {
		end := min(start+size, in.Len())
		view, err := in.Slice(start, end)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, &chunkTask{
			index:      len(tasks),
			in:         view,
			urlIdx:     urlIdx,
			extractors: f.extractors,
			logger:     f.logger,
		})
	}
	return tasks, nil
}

func (f *Flattener) run(ctx context.Context, tasks []*chunkTask) error {
	if f.opts.Workers <= 1 || len(tasks) == 1 {
		for _, t := range tasks {
			if err := t.Execute(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	pool := workerpool.NewWorkerPool(workerpool.WorkerPoolConfig{
		Workers:   min(f.opts.Workers, len(tasks)),
		Scheduler: workerpool.SchedulerByName(f.opts.Scheduler),
		Logger:    f.logger,
	})
	pool.Start()
	defer pool.Stop()

	generic := make([]workerpool.Task, len(tasks))
	for i, t := range tasks {
		generic[i] = t
	}
	for _, r := range pool.Submit(ctx, generic) {
		if r.Error != nil {
			return r.Error
		}
	}
	return ctx.Err()
}
