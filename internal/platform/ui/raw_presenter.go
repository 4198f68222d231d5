// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogFormat is the output format of the raw presenter.
type LogFormat string

const (
	LogFormatText LogFormat = "text" // logfmt (default)
	LogFormatJSON LogFormat = "json" // one JSON object per line
)

// RawPresenter prints one machine-readable line per event, for CI logs and pipes.
type RawPresenter struct {
	format LogFormat
	out    io.Writer
	mu     sync.Mutex
}

// NewRawPresenter creates a raw presenter writing to stdout.
func NewRawPresenter(format LogFormat) *RawPresenter {
	return NewRawPresenterWithWriter(format, os.Stdout)
}

// NewRawPresenterWithWriter creates a raw presenter writing to w.
func NewRawPresenterWithWriter(format LogFormat, w io.Writer) *RawPresenter {
	if format != LogFormatJSON {
		format = LogFormatText
	}
	return &RawPresenter{format: format, out: w}
}

type field struct {
	key   string
	value any
}

func (r *RawPresenter) log(level, message string, fields ...field) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := time.Now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
	} else {
		r.logText(timestamp, level, message, fields)
	}
}

// logText writes: timestamp LEVEL message key=value key2=value2
func (r *RawPresenter) logText(timestamp, level, message string, fields []field) {
	parts := []string{timestamp, fmt.Sprintf("%-5s", level), formatValue(message)}
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%s", f.key, formatValue(f.value)))
	}
	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

func (r *RawPresenter) logJSON(timestamp, level, message string, fields []field) {
	entry := map[string]any{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}
	if len(fields) > 0 {
		data := make(map[string]any, len(fields))
		for _, f := range fields {
			if d, ok := f.value.(time.Duration); ok {
				data[f.key] = d.String()
				continue
			}
			data[f.key] = f.value
		}
		entry["data"] = data
	}

	jsonBytes, _ := json.Marshal(entry)
	fmt.Fprintln(r.out, string(jsonBytes))
}

// formatValue quotes strings containing spaces.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if strings.Contains(val, " ") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case time.Duration:
		return val.String()
	case map[string]int:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s:%d", k, val[k])
		}
		return strings.Join(pairs, ",")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Start logs the run configuration.
func (r *RawPresenter) Start(info RunInfo) {
	r.log("INFO", "run_started",
		field{"run_id", info.RunID},
		field{"mode", info.Mode},
		field{"input", info.Input},
		field{"artifacts", info.ArtifactsDir},
		field{"chunk_size", info.ChunkSize},
		field{"workers", info.Workers},
	)
}

// StartStage logs a stage start.
func (r *RawPresenter) StartStage(stage StageInfo) {
	r.log("INFO", "stage_started",
		field{"stage", stage.Number},
		field{"name", stage.Name},
		field{"chunks", stage.Chunks},
	)
}

// ChunkDone logs chunk progress.
func (r *RawPresenter) ChunkDone(stage string, done, total int) {
	r.log("INFO", "chunk_done",
		field{"stage", stage},
		field{"done", done},
		field{"total", total},
	)
}

// FinishStage logs a stage completion.
func (r *RawPresenter) FinishStage(name string, duration time.Duration) {
	r.log("INFO", "stage_completed",
		field{"name", name},
		field{"duration", duration},
	)
}

// Info logs an informational message.
func (r *RawPresenter) Info(msg string) {
	r.log("INFO", msg)
}

// Warning logs a warning.
func (r *RawPresenter) Warning(msg string) {
	r.log("WARN", msg)
}

// Error logs an error.
func (r *RawPresenter) Error(msg string) {
	r.log("ERROR", msg)
}

// Finish logs the final statistics.
func (r *RawPresenter) Finish(stats RunStats) {
	r.log("INFO", "run_completed",
		field{"duration", stats.TotalDuration},
		field{"rows_in", stats.RowsIn},
		field{"rows_out", stats.RowsOut},
		field{"rows_dropped", stats.RowsDropped},
		field{"lexical_failures", stats.LexicalFailures},
		field{"descriptive_failures", stats.DescriptiveFailures},
		field{"columns", stats.Columns},
		field{"distinct_domains", stats.DistinctDomains},
	)

	if len(stats.EncodedColumns) > 0 {
		r.log("INFO", "encoded_columns", field{"classes", stats.EncodedColumns})
	}
}

// Close is a no-op.
func (r *RawPresenter) Close() error {
	return nil
}
