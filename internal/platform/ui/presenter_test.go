package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestUIMode_IsValid(t *testing.T) {
	tests := []struct {
		mode  UIMode
		valid bool
	}{
		{UIModePretty, true},
		{UIModeRaw, true},
		{UIModeQuiet, true},
		{UIMode("dashboard"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := tt.mode.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestNew(t *testing.T) {
	if _, ok := New(UIModeQuiet).(*NoopPresenter); !ok {
		t.Error("quiet mode should yield NoopPresenter")
	}
	if _, ok := New(UIModeRaw).(*RawPresenter); !ok {
		t.Error("raw mode should yield RawPresenter")
	}
	if _, ok := New(UIModePretty).(*PTermPresenter); !ok {
		t.Error("pretty mode should yield PTermPresenter")
	}
	if _, ok := New(UIMode("bogus")).(*NoopPresenter); !ok {
		t.Error("unknown mode should fall back to NoopPresenter")
	}
}

func TestRawPresenter_Text(t *testing.T) {
	var buf bytes.Buffer
	p := NewRawPresenterWithWriter(LogFormatText, &buf)

	p.Start(RunInfo{RunID: "r1", Mode: "fit", Input: "urls.csv", ChunkSize: 1000, Workers: 2})
	p.ChunkDone("extract", 1, 3)
	p.Warning("3 rows dropped")
	p.Finish(RunStats{RowsIn: 10, RowsOut: 7, EncodedColumns: map[string]int{"b": 2, "a": 5}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), buf.String())
	}

	checks := []struct {
		line int
		want string
	}{
		{0, "run_started run_id=r1 mode=fit input=urls.csv"},
		{1, "chunk_done stage=extract done=1 total=3"},
		{2, `WARN  "3 rows dropped"`},
		{3, "rows_in=10 rows_out=7"},
		{4, "classes=a:5,b:2"},
	}
	for _, c := range checks {
		if !strings.Contains(lines[c.line], c.want) {
			t.Errorf("line %d = %q, want it to contain %q", c.line, lines[c.line], c.want)
		}
	}
}

func TestRawPresenter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewRawPresenterWithWriter(LogFormatJSON, &buf)

	p.FinishStage("extract", 1500*time.Millisecond)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if entry["message"] != "stage_completed" {
		t.Errorf("message = %v", entry["message"])
	}
	data := entry["data"].(map[string]any)
	if data["duration"] != "1.5s" {
		t.Errorf("duration = %v, want 1.5s", data["duration"])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{2500 * time.Millisecond, "2.5s"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestStatus(t *testing.T) {
	if StatusSuccess.String() != "success" || StatusSuccess.Symbol() != "✓" {
		t.Error("unexpected success rendering")
	}
	if Status(99).String() != "unknown" {
		t.Error("unknown status")
	}
}

func TestNoopPresenter(t *testing.T) {
	var p Presenter = NewNoopPresenter()
	p.Start(RunInfo{})
	p.ChunkDone("x", 1, 1)
	p.Finish(RunStats{})
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
