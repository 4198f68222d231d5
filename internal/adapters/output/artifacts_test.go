package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"urlfeat/internal/core/domain"
	apperrors "urlfeat/internal/platform/errors"
	"urlfeat/internal/platform/logx"
	"urlfeat/internal/testutil"
)

func TestManifest_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileArtifactStore(filepath.Join(dir, "models"), "", logx.NewNop())

	cols := []string{"Classification", "Lexical_domain", "Descriptive_filename"}
	testutil.AssertNoError(t, store.SaveManifest(cols), "save")
	testutil.AssertEqual(t, store.ManifestPath(), filepath.Join(dir, "models", ManifestFile), "default path")

	data, err := os.ReadFile(store.ManifestPath())
	testutil.AssertNoError(t, err, "read raw")
	testutil.AssertEqual(t, string(data), "Classification\nLexical_domain\nDescriptive_filename\n", "one name per line")

	got, err := store.LoadManifest()
	testutil.AssertNoError(t, err, "load")
	testutil.AssertStrings(t, got, cols, "columns")
}

func TestManifest_Overwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cols.txt")
	testutil.AssertNoError(t, WriteManifest(path, []string{"a", "b", "c"}), "first")
	testutil.AssertNoError(t, WriteManifest(path, []string{"z"}), "second")

	got, err := ReadManifest(path)
	testutil.AssertNoError(t, err, "read")
	testutil.AssertStrings(t, got, []string{"z"}, "replaced")
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "nope.txt"))
	testutil.AssertErrorIs(t, err, domain.ErrArtifactRead, "missing")
	testutil.AssertErrorIs(t, err, os.ErrNotExist, "cause kept")
	testutil.AssertTrue(t, apperrors.IsNotFound(err), "classified as not found")
	testutil.AssertContains(t, err.Error(), "manifest", "context")
}

func TestEncoder_RoundTrip(t *testing.T) {
	store := NewFileArtifactStore(t.TempDir(), "", logx.NewNop())
	a := domain.EncoderArtifact{
		Column:      "Lexical_domain",
		Classes:     []string{"a.com", "b.com"},
		UnknownCode: 2,
		RunID:       "run-1",
		FittedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	testutil.AssertNoError(t, store.SaveEncoder(a), "save")
	_, err := os.Stat(filepath.Join(store.Dir(), "Lexical_domain_encoder.json"))
	testutil.AssertNoError(t, err, "file name")

	got, err := store.LoadEncoder("Lexical_domain")
	testutil.AssertNoError(t, err, "load")
	testutil.AssertStrings(t, got.Classes, a.Classes, "classes")
	testutil.AssertEqual(t, got.UnknownCode, 2, "unknown code")
	testutil.AssertEqual(t, got.RunID, "run-1", "run id")
	testutil.AssertTrue(t, got.FittedAt.Equal(a.FittedAt), "fitted at")
}

func TestEncoder_LoadErrors(t *testing.T) {
	store := NewFileArtifactStore(t.TempDir(), "", logx.NewNop())

	_, err := store.LoadEncoder("missing")
	testutil.AssertErrorIs(t, err, domain.ErrArtifactRead, "missing file")

	testutil.AssertNoError(t, os.WriteFile(store.EncoderPath("bad"), []byte("{not json"), 0o644), "seed")
	_, err = store.LoadEncoder("bad")
	testutil.AssertErrorIs(t, err, domain.ErrArtifactRead, "bad json")

	testutil.AssertNoError(t, store.SaveEncoder(domain.EncoderArtifact{Column: "other"}), "save")
	testutil.AssertNoError(t, os.Rename(store.EncoderPath("other"), store.EncoderPath("swapped")), "rename")
	_, err = store.LoadEncoder("swapped")
	testutil.AssertErrorIs(t, err, domain.ErrArtifactRead, "column mismatch")
}

func TestSave_UnwritableDir(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	testutil.AssertNoError(t, os.WriteFile(blocker, []byte("x"), 0o644), "seed")

	// A regular file where the artifacts directory should be.
	store := NewFileArtifactStore(filepath.Join(blocker, "models"), "", logx.NewNop())

	err := store.SaveManifest([]string{"a"})
	testutil.AssertErrorIs(t, err, domain.ErrArtifactWrite, "manifest")

	err = store.SaveEncoder(domain.EncoderArtifact{Column: "a"})
	testutil.AssertErrorIs(t, err, domain.ErrArtifactWrite, "encoder")
}

func TestSanitizeColumnName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Lexical_domain", "Lexical_domain"},
		{"my col/x", "my_col_x"},
		{"a:b", "a_b"},
		{"v1.2", "v1.2"},
		{"Año", "Año"},
		{"Añx", "Añx"},
		{"año fiscal", "año_fiscal"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, sanitizeColumnName(tt.input), tt.expected, "sanitized")
		})
	}
}

func TestFileArtifactStore_SanitizedNameCollision(t *testing.T) {
	dir := t.TempDir()
	store := NewFileArtifactStore(dir, "", logx.NewNop())

	testutil.AssertNoError(t, store.SaveEncoder(domain.EncoderArtifact{Column: "a b", Classes: []string{"x"}}), "first column")
	testutil.AssertNoError(t, store.SaveEncoder(domain.EncoderArtifact{Column: "a b", Classes: []string{"y"}}), "same column again")

	err := store.SaveEncoder(domain.EncoderArtifact{Column: "a/b", Classes: []string{"z"}})
	testutil.AssertErrorIs(t, err, domain.ErrArtifactWrite, "collision rejected")

	a, err := store.LoadEncoder("a b")
	testutil.AssertNoError(t, err, "load survivor")
	testutil.AssertStrings(t, a.Classes, []string{"y"}, "first column's file untouched")
}

func TestFileArtifactStore_NonASCIIColumnsDoNotCollide(t *testing.T) {
	store := NewFileArtifactStore(t.TempDir(), "", logx.NewNop())

	testutil.AssertNoError(t, store.SaveEncoder(domain.EncoderArtifact{Column: "Año", Classes: []string{"1"}}), "Año")
	testutil.AssertNoError(t, store.SaveEncoder(domain.EncoderArtifact{Column: "Añx", Classes: []string{"2"}}), "Añx")
	testutil.AssertTrue(t, store.EncoderPath("Año") != store.EncoderPath("Añx"), "distinct files")

	a, err := store.LoadEncoder("Año")
	testutil.AssertNoError(t, err, "load Año")
	testutil.AssertStrings(t, a.Classes, []string{"1"}, "classes")
}
