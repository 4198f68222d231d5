// internal/adapters/output/summary.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"urlfeat/internal/core/domain"
)

// OutputSummary prints a plain-text summary of a run, for terminals where
// the interactive presenter is disabled.
func OutputSummary(w io.Writer, r domain.RunReport) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== urlfeat %s run ===\n", r.Mode)
	fmt.Fprintf(tw, "Run ID:\t%s\n", r.RunID)
	if r.Input != "" {
		fmt.Fprintf(tw, "Input:\t%s\n", r.Input)
	}
	if r.Output != "" {
		fmt.Fprintf(tw, "Output:\t%s\n", r.Output)
	}
	fmt.Fprintf(tw, "Duration:\t%s\n", r.Duration)
	fmt.Fprintf(tw, "Rows:\t%d in, %d out, %d dropped\n", r.RowsIn, r.RowsOut, r.RowsDropped)
	fmt.Fprintf(tw, "Failures:\t%d lexical, %d descriptive\n", r.LexicalFailures, r.DescriptiveFailures)
	fmt.Fprintf(tw, "Chunks:\t%d x %d rows, %d workers\n", r.Chunks, r.ChunkSize, r.Workers)
	fmt.Fprintf(tw, "Columns:\t%d\n", len(r.Columns))
	if r.ManifestPath != "" {
		fmt.Fprintf(tw, "Manifest:\t%s\n", r.ManifestPath)
	}
	fmt.Fprintf(tw, "Distinct domains:\t%d\n\n", r.DistinctDomains)

	if len(r.EncodedColumns) > 0 {
		fmt.Fprintln(tw, "COLUMN\tCLASSES")
		fmt.Fprintln(tw, "------\t-------")
		for _, c := range r.EncodedColumns {
			fmt.Fprintf(tw, "%s\t%d\n", c.Column, c.Classes)
		}
		fmt.Fprintln(tw)
	}

	if len(r.TopDomains) > 0 {
		fmt.Fprintln(tw, "DOMAIN\tROWS")
		fmt.Fprintln(tw, "------\t----")
		for _, d := range r.TopDomains {
			fmt.Fprintf(tw, "%s\t%d\n", d.Domain, d.Count)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush summary: %w", err)
	}

	if r.RowsIn > 0 && r.RowsOut == 0 {
		fmt.Fprintln(w, "\nwarning: every row was dropped by the null filter")
	}
	return nil
}
