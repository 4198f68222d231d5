// internal/core/usecases/pipeline_integration_test.go
package usecases_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"urlfeat/internal/adapters/input"
	"urlfeat/internal/adapters/output"
	"urlfeat/internal/core/domain"
	"urlfeat/internal/core/usecases"
	"urlfeat/internal/flatten"
	"urlfeat/internal/platform/logx"
	"urlfeat/internal/testutil"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestPipelineIntegration_FitThenApply(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	dir := t.TempDir()
	artifacts := filepath.Join(dir, "models-checkpoints")
	logger := logx.NewNop()

	trainPath := writeCSV(t, dir, "train.csv", testutil.FixtureCSV(testutil.FixtureURLs))
	store := output.NewFileArtifactStore(artifacts, "", logger)

	fit, err := usecases.NewPipeline(usecases.PipelineOptions{
		Source:  input.NewCSVSource(trainPath, input.CSVOptions{}, logger),
		Store:   store,
		Sink:    output.NewCSVSink(filepath.Join(dir, "out", "train_features.csv")),
		Flatten: flatten.Options{ChunkSize: 3, Workers: 2},
		Logger:  logger,
	})
	testutil.AssertNoError(t, err, "NewPipeline fit")

	fitRes, err := fit.Fit(context.Background())
	testutil.AssertNoError(t, err, "Fit")
	testutil.AssertTrue(t, fitRes.Table.Len() > 0, "rows survive")

	manifest, err := output.ReadManifest(filepath.Join(artifacts, output.ManifestFile))
	testutil.AssertNoError(t, err, "ReadManifest")
	testutil.AssertStrings(t, manifest, fitRes.Table.Schema.Names(), "manifest on disk")

	for _, enc := range fitRes.Encoders {
		_, err := os.Stat(store.EncoderPath(enc.Column()))
		testutil.AssertNoError(t, err, "encoder artifact for "+enc.Column())
	}

	written, err := os.ReadFile(filepath.Join(dir, "out", "train_features.csv"))
	testutil.AssertNoError(t, err, "read features")
	header := strings.SplitN(string(written), "\n", 2)[0]
	testutil.AssertEqual(t, header, strings.Join(manifest, ","), "csv header")

	// Apply the fitted artifacts to the training URLs again.
	apply, err := usecases.NewPipeline(usecases.PipelineOptions{
		Source:  input.NewCSVSource(trainPath, input.CSVOptions{}, logger),
		Store:   output.NewFileArtifactStore(artifacts, "", logger),
		Flatten: flatten.Options{ChunkSize: 1000},
		Logger:  logger,
	})
	testutil.AssertNoError(t, err, "NewPipeline apply")

	applyRes, err := apply.Run(context.Background(), domain.RunModeApply)
	testutil.AssertNoError(t, err, "Apply")
	testutil.AssertEqual(t, applyRes.Table.Len(), fitRes.Table.Len(), "same rows")
	for i := range fitRes.Table.Rows {
		for j := range fitRes.Table.Rows[i] {
			if !fitRes.Table.Rows[i][j].Equal(applyRes.Table.Rows[i][j]) {
				t.Errorf("row %d col %s: fit %s, apply %s", i, manifest[j],
					fitRes.Table.Rows[i][j], applyRes.Table.Rows[i][j])
			}
		}
	}
}

func TestPipelineIntegration_UnwritableArtifactsDir(t *testing.T) {
	dir := t.TempDir()
	blocker := writeCSV(t, dir, "blocker", "not a directory")
	trainPath := writeCSV(t, dir, "train.csv", testutil.FixtureCSV([]string{"http://example.com/a.html"}))
	logger := logx.NewNop()

	p, err := usecases.NewPipeline(usecases.PipelineOptions{
		Source:  input.NewCSVSource(trainPath, input.CSVOptions{}, logger),
		Store:   output.NewFileArtifactStore(filepath.Join(blocker, "models"), "", logger),
		Flatten: flatten.Options{ChunkSize: 10},
		Logger:  logger,
	})
	testutil.AssertNoError(t, err, "NewPipeline")

	_, err = p.Fit(context.Background())
	testutil.AssertErrorIs(t, err, domain.ErrArtifactWrite, "unwritable dir is fatal")
}
