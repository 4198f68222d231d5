package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/testutil"
)

func sampleReport() domain.RunReport {
	return domain.RunReport{
		RunID:          "0f1e",
		Mode:           domain.RunModeFit,
		StartedAt:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Duration:       1500 * time.Millisecond,
		Input:          "urls.csv",
		RowsIn:         10,
		RowsOut:        8,
		RowsDropped:    2,
		Chunks:         1,
		ChunkSize:      1000,
		Workers:        1,
		Columns:        []string{"Classification", "Lexical_domain"},
		EncodedColumns: []domain.EncodedColumn{{Column: "Lexical_domain", Classes: 4}},
		ArtifactsDir:   "models-checkpoints",
		TopDomains:     []domain.DomainCount{{Domain: "example.com", Count: 5}},
	}
}

func TestWriteReport(t *testing.T) {
	path := ReportPath(t.TempDir(), "0f1e")
	testutil.AssertNoError(t, WriteReport(path, sampleReport()), "write")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "read")

	var got domain.RunReport
	testutil.AssertNoError(t, json.Unmarshal(data, &got), "decode")
	testutil.AssertEqual(t, got.RunID, "0f1e", "run id")
	testutil.AssertEqual(t, got.Mode, domain.RunModeFit, "mode")
	testutil.AssertEqual(t, got.RowsDropped, 2, "dropped")
	testutil.AssertEqual(t, got.EncodedColumns[0].Classes, 4, "classes")
}

func TestReportPath(t *testing.T) {
	testutil.AssertEqual(t, ReportPath("models", "abc"), filepath.Join("models", "reports", "urlfeat_abc.json"), "path")
}

func TestOutputSummary(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputSummary(&buf, sampleReport()), "summary")

	out := buf.String()
	testutil.AssertContains(t, out, "urlfeat fit run", "title")
	testutil.AssertContains(t, out, "10 in, 8 out, 2 dropped", "rows")
	testutil.AssertContains(t, out, "Lexical_domain", "encoded column")
	testutil.AssertContains(t, out, "example.com", "top domain")
	testutil.AssertFalse(t, bytes.Contains(buf.Bytes(), []byte("warning")), "no warning")
}

func TestOutputSummary_AllDropped(t *testing.T) {
	r := sampleReport()
	r.RowsOut = 0
	var buf bytes.Buffer
	testutil.AssertNoError(t, OutputSummary(&buf, r), "summary")
	testutil.AssertContains(t, buf.String(), "every row was dropped", "warning")
}
