// internal/adapters/output/report.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"urlfeat/internal/core/domain"
)

// WriteReport writes the run report as indented JSON to path.
func WriteReport(path string, report domain.RunReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := EncodeReport(f, report); err != nil {
		return err
	}
	return f.Close()
}

// EncodeReport writes the run report as indented JSON to w.
func EncodeReport(w io.Writer, report domain.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// ReportPath returns the default report location for a run.
func ReportPath(artifactsDir, runID string) string {
	return filepath.Join(artifactsDir, "reports", fmt.Sprintf("urlfeat_%s.json", runID))
}
