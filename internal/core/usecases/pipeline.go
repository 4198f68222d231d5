// internal/core/usecases/pipeline.go
package usecases

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/core/ports"
	"urlfeat/internal/encoder"
	"urlfeat/internal/flatten"
	"urlfeat/internal/platform/cache"
	apperrors "urlfeat/internal/platform/errors"
	"urlfeat/internal/platform/logx"
	"urlfeat/internal/platform/ui"
)

// DefaultLabelColumn is the class column excluded from encoding.
const DefaultLabelColumn = "Classification"

// PipelineOptions configures a Pipeline.
type PipelineOptions struct {
	Source ports.TableSource
	Store  ports.ArtifactStore

	// Sink is optional; without it the encoded table is only returned.
	Sink ports.TableSink

	Flatten       flatten.Options
	LabelColumn   string
	NullPolicy    domain.NullPolicy
	UnknownPolicy domain.UnknownPolicy

	// TopDomains caps the registrable-domain list of the report.
	TopDomains int

	Logger    logx.Logger
	Presenter ui.Presenter

	// Now and NewRunID are replaceable for tests.
	Now      func() time.Time
	NewRunID func() string
}

// Result is the outcome of a pipeline run.
type Result struct {
	Table    *domain.Table
	Report   domain.RunReport
	Encoders []*encoder.LabelEncoder
}

// Pipeline turns a table of URLs into an encoded feature table.
// Fit learns and persists the manifest and encoders; Apply reuses them.
type Pipeline struct {
	opts      PipelineOptions
	flattener *flatten.Flattener
	logger    logx.Logger
	presenter ui.Presenter

	// domains memoizes registrable-domain lookups across runs.
	domains *cache.LRU[string, string]
}

// NewPipeline validates opts. A non-positive chunk size fails here with
// domain.ErrInvalidChunkSize, before any input is read.
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("%w: no table source", domain.ErrInvalidConfig)
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("%w: no artifact store", domain.ErrInvalidConfig)
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}
	if opts.LabelColumn == "" {
		opts.LabelColumn = DefaultLabelColumn
	}
	if opts.NullPolicy == "" {
		opts.NullPolicy = domain.NullPolicyAny
	}
	if !opts.NullPolicy.IsValid() {
		return nil, fmt.Errorf("%w: null policy %q", domain.ErrInvalidConfig, opts.NullPolicy)
	}
	if opts.UnknownPolicy == "" {
		opts.UnknownPolicy = domain.UnknownError
	}
	if !opts.UnknownPolicy.IsValid() {
		return nil, fmt.Errorf("%w: unknown policy %q", domain.ErrInvalidConfig, opts.UnknownPolicy)
	}
	if opts.TopDomains <= 0 {
		opts.TopDomains = 10
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewRunID == nil {
		opts.NewRunID = func() string { return uuid.NewString() }
	}

	f, err := flatten.New(opts.Flatten, opts.Logger)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		opts:      opts,
		flattener: f,
		logger:    opts.Logger.With("component", "pipeline"),
		presenter: opts.Presenter,
		domains:   cache.New[string, string](domainCacheSize),
	}, nil
}

// Run dispatches to Fit or Apply.
func (p *Pipeline) Run(ctx context.Context, mode domain.RunMode) (*Result, error) {
	switch mode {
	case domain.RunModeFit:
		return p.Fit(ctx)
	case domain.RunModeApply:
		return p.Apply(ctx)
	default:
		return nil, fmt.Errorf("%w: run mode %q", domain.ErrInvalidConfig, mode)
	}
}

// run is the state shared by the stages of one Fit or Apply call.
type run struct {
	report domain.RunReport
	start  time.Time
	stages *stageRunner
	table  *domain.Table
}

func (p *Pipeline) newRun(mode domain.RunMode) *run {
	start := p.opts.Now()
	r := &run{
		start:  start,
		stages: newStageRunner(p.presenter, 5),
		report: domain.RunReport{
			RunID:        p.opts.NewRunID(),
			Mode:         mode,
			StartedAt:    start.UTC(),
			Input:        p.opts.Source.Name(),
			ChunkSize:    p.opts.Flatten.ChunkSize,
			Workers:      max(p.opts.Flatten.Workers, 1),
			ArtifactsDir: p.opts.Store.Dir(),
		},
	}
	if p.opts.Sink != nil {
		r.report.Output = p.opts.Sink.Name()
	}
	return r
}

// Fit extracts features, records the column manifest, drops incomplete rows,
// fits one encoder per categorical column and persists everything.
// Empty input produces an empty table and no manifest.
func (p *Pipeline) Fit(ctx context.Context) (*Result, error) {
	r := p.newRun(domain.RunModeFit)
	p.logger.Info("fit started", "run_id", r.report.RunID, "input", r.report.Input)

	if err := p.loadAndFlatten(ctx, r); err != nil {
		return nil, err
	}

	if r.report.RowsIn == 0 {
		p.logger.Warn("empty input, no manifest written", "input", r.report.Input)
		p.presenter.Warning("input has no rows; nothing to fit")
		return p.finish(ctx, r, nil)
	}

	if err := p.opts.Store.SaveManifest(r.table.Schema.Names()); err != nil {
		p.explainIOError(err)
		return nil, apperrors.Wrap(err, "save manifest")
	}
	r.report.ManifestPath = p.opts.Store.ManifestPath()

	if err := r.stages.run(StageFilter, 0, func() error {
		p.filter(r)
		return nil
	}); err != nil {
		return nil, err
	}

	var encoders []*encoder.LabelEncoder
	err := r.stages.run(StageEncode, 0, func() error {
		var err error
		encoders, err = encoder.FitTable(r.table, p.opts.LabelColumn)
		if err != nil {
			return err
		}
		fittedAt := p.opts.Now()
		for _, enc := range encoders {
			if err := p.opts.Store.SaveEncoder(enc.Artifact(r.report.RunID, fittedAt)); err != nil {
				p.explainIOError(err)
				return apperrors.Wrapf(err, "save encoder %q", enc.Column())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return p.finish(ctx, r, encoders)
}

// Apply extracts features and encodes them with the manifest and encoders of
// a previous Fit. Columns are reordered to the manifest; a manifest column
// other than the label that the run cannot produce fails with
// domain.ErrManifestMismatch.
func (p *Pipeline) Apply(ctx context.Context) (*Result, error) {
	r := p.newRun(domain.RunModeApply)
	p.logger.Info("apply started", "run_id", r.report.RunID, "input", r.report.Input)

	manifest, err := p.opts.Store.LoadManifest()
	if err != nil {
		if apperrors.IsNotFound(err) {
			p.presenter.Error("no manifest in " + p.opts.Store.Dir() + "; run in fit mode first")
		} else {
			p.explainIOError(err)
		}
		return nil, apperrors.Wrap(err, "load manifest")
	}
	r.report.ManifestPath = p.opts.Store.ManifestPath()

	if err := p.loadAndFlatten(ctx, r); err != nil {
		return nil, err
	}

	aligned, err := p.alignToManifest(r.table, manifest)
	if err != nil {
		return nil, err
	}
	r.table = aligned

	if err := r.stages.run(StageFilter, 0, func() error {
		p.filter(r)
		return nil
	}); err != nil {
		return nil, err
	}

	var encoders []*encoder.LabelEncoder
	err = r.stages.run(StageEncode, 0, func() error {
		byName := make(map[string]*encoder.LabelEncoder)
		for _, col := range encoder.Columns(r.table.Schema, p.opts.LabelColumn) {
			a, err := p.opts.Store.LoadEncoder(col)
			if err != nil {
				p.explainIOError(err)
				return apperrors.Wrapf(err, "load encoder %q", col)
			}
			enc, err := encoder.FromArtifact(a)
			if err != nil {
				return err
			}
			byName[col] = enc
			encoders = append(encoders, enc)
		}
		return encoder.TransformTable(r.table, p.opts.LabelColumn, byName, p.opts.UnknownPolicy)
	})
	if err != nil {
		return nil, err
	}

	return p.finish(ctx, r, encoders)
}

// explainIOError tells the user which path could not be accessed when err
// is a filesystem permission failure.
func (p *Pipeline) explainIOError(err error) {
	if !apperrors.IsPermission(err) {
		return
	}
	path := p.opts.Store.Dir()
	var pathErr *fs.PathError
	if apperrors.As(err, &pathErr) {
		path = pathErr.Path
	}
	p.logger.Err(err, "path", path)
	p.presenter.Error("permission denied on " + path)
}

func (p *Pipeline) loadAndFlatten(ctx context.Context, r *run) error {
	var input *domain.Table
	err := r.stages.run(StageLoad, 0, func() error {
		tbl, err := p.opts.Source.Load(ctx)
		if err != nil {
			p.explainIOError(err)
			return apperrors.Wrapf(err, "load %s", p.opts.Source.Name())
		}
		input = tbl
		return nil
	})
	if err != nil {
		return err
	}

	// Declare the label even if the source did not.
	input.Schema = input.Schema.WithRole(p.opts.LabelColumn, domain.RoleLabel)
	r.report.RowsIn = input.Len()

	chunks := (input.Len() + p.opts.Flatten.ChunkSize - 1) / p.opts.Flatten.ChunkSize
	return r.stages.run(StageExtract, chunks, func() error {
		progress := func(done, total int) { p.presenter.ChunkDone(StageExtract, done, total) }
		flat, stats, err := p.flattener.Flatten(ctx, input, progress)
		if err != nil {
			return err
		}
		r.table = flat
		r.report.Chunks = stats.Chunks
		r.report.LexicalFailures = stats.LexicalFailures
		r.report.DescriptiveFailures = stats.DescriptiveFailures
		if failed := max(stats.LexicalFailures, stats.DescriptiveFailures); failed > 0 {
			p.logger.Warn("rows failed extraction",
				"lexical", stats.LexicalFailures,
				"descriptive", stats.DescriptiveFailures,
			)
		}
		return nil
	})
}

func (p *Pipeline) filter(r *run) {
	dropped := dropIncomplete(r.table, p.opts.NullPolicy)
	r.report.RowsDropped = dropped
	if dropped > 0 {
		p.logger.Info("dropped incomplete rows", "rows", dropped, "policy", p.opts.NullPolicy.String())
	}
	r.report.DistinctDomains, r.report.TopDomains = domainProfile(r.table, p.opts.TopDomains, p.domains)
	st := p.domains.Stats()
	p.logger.Debug("domain profile", "distinct", r.report.DistinctDomains, "cache_hits", st.Hits, "cache_misses", st.Misses)
}

// alignToManifest selects the manifest's columns in manifest order.
func (p *Pipeline) alignToManifest(tbl *domain.Table, manifest []string) (*domain.Table, error) {
	want := make(map[string]bool, len(manifest))
	names := make([]string, 0, len(manifest))
	for _, col := range manifest {
		want[col] = true
		if tbl.Schema.Index(col) >= 0 {
			names = append(names, col)
			continue
		}
		if col == p.opts.LabelColumn {
			continue
		}
		return nil, fmt.Errorf("%w: column %q missing from input", domain.ErrManifestMismatch, col)
	}

	for _, col := range tbl.Schema.Names() {
		if !want[col] {
			p.logger.Warn("column not in manifest, dropped", "column", col)
		}
	}
	return tbl.Select(names)
}

func (p *Pipeline) finish(ctx context.Context, r *run, encoders []*encoder.LabelEncoder) (*Result, error) {
	if p.opts.Sink != nil {
		err := r.stages.run(StageWrite, 0, func() error {
			return p.opts.Sink.Write(ctx, r.table)
		})
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", p.opts.Sink.Name(), err)
		}
	}

	r.report.RowsOut = r.table.Len()
	r.report.Columns = r.table.Schema.Names()
	r.report.EncodedColumns = make([]domain.EncodedColumn, 0, len(encoders))
	for _, enc := range encoders {
		r.report.EncodedColumns = append(r.report.EncodedColumns, domain.EncodedColumn{
			Column:  enc.Column(),
			Classes: enc.Len(),
		})
	}
	r.report.Duration = p.opts.Now().Sub(r.start)

	p.logger.Info("run completed",
		"run_id", r.report.RunID,
		"mode", r.report.Mode.String(),
		"rows_in", r.report.RowsIn,
		"rows_out", r.report.RowsOut,
		"encoded_columns", len(encoders),
	)

	return &Result{Table: r.table, Report: r.report, Encoders: encoders}, nil
}
