// cmd/urlfeat/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"urlfeat/internal/adapters/input"
	"urlfeat/internal/adapters/output"
	"urlfeat/internal/core/domain"
	"urlfeat/internal/core/usecases"
	"urlfeat/internal/flatten"
	"urlfeat/internal/platform/config"
	"urlfeat/internal/platform/logx"
	"urlfeat/internal/platform/ui"
)

var (
	// Set with -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load config (handles help/version internally)
	cfg, err := config.Load(version, commit, date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.Core.Input == "" {
		fmt.Fprintln(os.Stderr, "Error: input file is required")
		fmt.Fprintln(os.Stderr, "Usage: urlfeat -i <urls.csv>")
		fmt.Fprintln(os.Stderr, "Try: urlfeat -h for help")
		os.Exit(2)
	}

	// 2. Shared logger
	logger := logx.NewWithLevel(logx.ParseLevel(cfg.LogLevel))

	runID := uuid.NewString()
	logger.Info("urlfeat starting",
		"version", version,
		"commit", commit,
		"run_id", runID,
		"mode", cfg.Core.Mode,
		"input", cfg.Core.Input,
		"chunk_size", cfg.Features.ChunkSize,
		"workers", cfg.Core.Workers,
	)

	// 3. Context and signals for clean shutdown
	ctx, cancel := rootContextWithSignals(cfg.Core.TimeoutS)
	defer cancel()

	// 4. Presenter. The feature table owns stdout when written there.
	presenter := newPresenter(cfg)
	defer func() {
		if err := presenter.Close(); err != nil {
			logger.Warn("failed to close presenter", "error", err.Error())
		}
	}()

	// 5. Adapters
	source := input.NewCSVSource(cfg.Core.Input, input.CSVOptions{
		URLColumn:   cfg.Core.URLColumn,
		LabelColumn: cfg.Core.LabelColumn,
	}, logger)
	store := output.NewFileArtifactStore(cfg.Artifacts.Dir, cfg.Artifacts.Manifest, logger)
	sink := output.NewCSVSink(cfg.Output.Path)

	// 6. Pipeline
	pipeline, err := usecases.NewPipeline(usecases.PipelineOptions{
		Source: source,
		Store:  store,
		Sink:   sink,
		Flatten: flatten.Options{
			ChunkSize:            cfg.Features.ChunkSize,
			URLColumn:            cfg.Core.URLColumn,
			Workers:              cfg.Core.Workers,
			Scheduler:            cfg.Core.Scheduler,
			NormalizeDescriptive: cfg.Features.NormalizeDescriptive,
		},
		LabelColumn:   cfg.Core.LabelColumn,
		NullPolicy:    domain.NullPolicy(cfg.Features.NullPolicy),
		UnknownPolicy: domain.UnknownPolicy(cfg.Artifacts.UnknownPolicy),
		TopDomains:    cfg.Output.TopDomains,
		Logger:        logger,
		Presenter:     presenter,
		NewRunID:      func() string { return runID },
	})
	if err != nil {
		logger.Err(err, "phase", "setup")
		os.Exit(2)
	}

	presenter.Start(ui.RunInfo{
		RunID:        runID,
		Mode:         cfg.Core.Mode,
		Input:        cfg.Core.Input,
		Output:       cfg.Output.Path,
		ArtifactsDir: cfg.Artifacts.Dir,
		ChunkSize:    cfg.Features.ChunkSize,
		Workers:      cfg.Core.Workers,
		TotalStages:  5,
	})

	// 7. Run
	start := time.Now()
	result, runErr := pipeline.Run(ctx, domain.RunMode(cfg.Core.Mode))
	elapsed := time.Since(start)

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
			presenter.Warning("run interrupted")
		}
		logger.Err(runErr, "phase", "run", "elapsed_ms", elapsed.Milliseconds())
		os.Exit(1)
	}

	// 8. Reports
	if err := writeOutputs(cfg, result.Report, presenter); err != nil {
		logger.Err(err, "phase", "output")
		os.Exit(1)
	}

	presenter.Finish(runStats(result.Report, elapsed))

	logger.Info("urlfeat finished",
		"run_id", runID,
		"elapsed_ms", elapsed.Milliseconds(),
		"rows_in", result.Report.RowsIn,
		"rows_out", result.Report.RowsOut,
	)
}

// newPresenter picks the UI. When the feature table goes to stdout any UI
// moves to stderr as raw lines.
func newPresenter(cfg config.Config) ui.Presenter {
	mode := ui.UIMode(cfg.Output.UIMode)
	if cfg.Output.Path == "-" && mode != ui.UIModeQuiet {
		return ui.NewRawPresenterWithWriter(ui.LogFormatText, os.Stderr)
	}
	return ui.New(mode)
}

// writeOutputs writes the JSON run report and, in quiet mode, a plain-text
// summary on stderr.
func writeOutputs(cfg config.Config, report domain.RunReport, presenter ui.Presenter) error {
	if cfg.Output.Report {
		path := output.ReportPath(cfg.Artifacts.Dir, report.RunID)
		if err := output.WriteReport(path, report); err != nil {
			return fmt.Errorf("run report: %w", err)
		}
		presenter.Info("run report written to " + path)
	}

	if ui.UIMode(cfg.Output.UIMode) == ui.UIModeQuiet {
		if err := output.OutputSummary(os.Stderr, report); err != nil {
			return fmt.Errorf("summary: %w", err)
		}
	}
	return nil
}

func runStats(r domain.RunReport, elapsed time.Duration) ui.RunStats {
	encoded := make(map[string]int, len(r.EncodedColumns))
	for _, c := range r.EncodedColumns {
		encoded[c.Column] = c.Classes
	}
	return ui.RunStats{
		TotalDuration:       elapsed,
		RowsIn:              r.RowsIn,
		RowsOut:             r.RowsOut,
		RowsDropped:         r.RowsDropped,
		LexicalFailures:     r.LexicalFailures,
		DescriptiveFailures: r.DescriptiveFailures,
		Columns:             len(r.Columns),
		EncodedColumns:      encoded,
		DistinctDomains:     r.DistinctDomains,
		ManifestPath:        r.ManifestPath,
	}
}

// rootContextWithSignals creates a root context with optional timeout and
// signal cancellation. The returned cancel releases the signal handler.
func rootContextWithSignals(timeoutSeconds int) (context.Context, context.CancelFunc) {
	var base context.Context
	var baseCancel context.CancelFunc

	if timeoutSeconds > 0 {
		base, baseCancel = context.WithTimeout(context.Background(), time.Duration(timeoutSeconds)*time.Second)
	} else {
		base, baseCancel = context.WithCancel(context.Background())
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
