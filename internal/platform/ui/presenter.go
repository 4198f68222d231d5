// internal/platform/ui/presenter.go
package ui

import (
	"time"
)

// UIMode selects how progress is shown.
type UIMode string

const (
	UIModePretty UIMode = "pretty" // Headers, progress bars and tables (default)
	UIModeRaw    UIMode = "raw"    // One logfmt or JSON line per event
	UIModeQuiet  UIMode = "quiet"  // No UI output
)

// IsValid reports whether the mode is known.
func (m UIMode) IsValid() bool {
	switch m {
	case UIModePretty, UIModeRaw, UIModeQuiet:
		return true
	default:
		return false
	}
}

// Presenter shows the progress of a feature extraction run.
// Implementations must be safe for concurrent use: chunk callbacks arrive
// from worker goroutines.
type Presenter interface {
	// Start shows the run configuration.
	Start(info RunInfo)

	// StartStage announces a pipeline stage.
	StartStage(stage StageInfo)

	// ChunkDone reports that done of total chunks of stage have finished.
	ChunkDone(stage string, done, total int)

	// FinishStage closes the named stage.
	FinishStage(name string, duration time.Duration)

	// Info shows an informational message.
	Info(msg string)

	// Warning shows a warning.
	Warning(msg string)

	// Error shows an error.
	Error(msg string)

	// Finish shows the final statistics.
	Finish(stats RunStats)

	// Close releases terminal resources.
	Close() error
}

// RunInfo describes a run before it starts.
type RunInfo struct {
	RunID        string
	Mode         string
	Input        string
	Output       string
	ArtifactsDir string
	ChunkSize    int
	Workers      int
	TotalStages  int
}

// StageInfo describes one pipeline stage.
type StageInfo struct {
	Number      int
	TotalStages int
	Name        string

	// Chunks is the number of progress steps in the stage, 0 when the stage
	// is not chunked.
	Chunks int
}

// RunStats are the final statistics of a run.
type RunStats struct {
	TotalDuration       time.Duration
	RowsIn              int
	RowsOut             int
	RowsDropped         int
	LexicalFailures     int
	DescriptiveFailures int
	Columns             int
	EncodedColumns      map[string]int
	DistinctDomains     int
	ManifestPath        string
}

// New returns the presenter for mode. Unknown modes fall back to quiet.
func New(mode UIMode) Presenter {
	switch mode {
	case UIModePretty:
		return NewPTermPresenter()
	case UIModeRaw:
		return NewRawPresenter(LogFormatText)
	default:
		return NewNoopPresenter()
	}
}
