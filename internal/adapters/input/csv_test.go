package input

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"urlfeat/internal/core/domain"
	apperrors "urlfeat/internal/platform/errors"
	"urlfeat/internal/platform/logx"
	"urlfeat/internal/testutil"
)

func newSource(path string) *CSVSource {
	return NewCSVSource(path, CSVOptions{URLColumn: "URL", LabelColumn: "Classification"}, logx.NewNop())
}

func read(t *testing.T, data string) (*domain.Table, error) {
	t.Helper()
	return newSource("inline").Read(context.Background(), strings.NewReader(data))
}

func TestRead_Basic(t *testing.T) {
	tbl, err := read(t, "URL,Classification,score,note\n"+
		"http://a.com,benign,1.5,x\n"+
		"b.com/x,phishing,,\n")
	testutil.AssertNoError(t, err, "read")
	testutil.AssertEqual(t, tbl.Len(), 2, "rows")

	tests := []struct {
		column string
		kind   domain.Kind
		role   domain.Role
	}{
		{"URL", domain.KindString, domain.RolePassthrough},
		{"Classification", domain.KindString, domain.RoleLabel},
		{"score", domain.KindFloat, domain.RolePassthrough},
		{"note", domain.KindString, domain.RolePassthrough},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			spec, ok := tbl.Schema.Lookup(tt.column)
			testutil.AssertTrue(t, ok, "column present")
			testutil.AssertEqual(t, spec.Kind, tt.kind, "kind")
			testutil.AssertEqual(t, spec.Role, tt.role, "role")
		})
	}

	testutil.AssertEqual(t, tbl.Rows[0][2].Float, 1.5, "float cell")
	testutil.AssertTrue(t, tbl.Rows[1][2].IsNull(), "empty numeric cell is null")
	testutil.AssertTrue(t, tbl.Rows[1][3].IsNull(), "empty string cell is null")
}

func TestRead_NumericLookingURLStaysString(t *testing.T) {
	tbl, err := read(t, "URL\n123\n456\n")
	testutil.AssertNoError(t, err, "read")
	spec, _ := tbl.Schema.Lookup("URL")
	testutil.AssertEqual(t, spec.Kind, domain.KindString, "url kind")
	testutil.AssertEqual(t, tbl.Rows[0][0].Str, "123", "url cell")
}

func TestRead_HeaderOnly(t *testing.T) {
	tbl, err := read(t, "URL,Classification\n")
	testutil.AssertNoError(t, err, "read")
	testutil.AssertEqual(t, tbl.Len(), 0, "no rows")
	testutil.AssertEqual(t, tbl.Schema.Len(), 2, "columns kept")
}

func TestRead_BOM(t *testing.T) {
	tbl, err := read(t, "\ufeffURL\nhttp://a.com\n")
	testutil.AssertNoError(t, err, "read")
	testutil.AssertEqual(t, tbl.Schema.Names()[0], "URL", "bom stripped")
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty file", "", domain.ErrMissingColumn},
		{"no url column", "Link,Classification\nx,y\n", domain.ErrMissingColumn},
		{"ragged row", "URL,Classification\nhttp://a.com\n", domain.ErrRaggedRow},
		{"duplicate header", "URL,URL\na,b\n", domain.ErrDuplicateColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := read(t, tt.data)
			testutil.AssertErrorIs(t, err, tt.want, tt.name)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.csv")
	testutil.AssertNoError(t, os.WriteFile(path, []byte(testutil.FixtureCSV(testutil.FixtureURLs)), 0o644), "seed")

	src := newSource(path)
	testutil.AssertEqual(t, src.Name(), path, "name")

	tbl, err := src.Load(context.Background())
	testutil.AssertNoError(t, err, "load")
	testutil.AssertEqual(t, tbl.Len(), len(testutil.FixtureURLs), "rows")

	urls, _ := tbl.Column("URL")
	testutil.AssertEqual(t, urls[0].Str, testutil.FixtureURLs[0], "url preserved")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newSource(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	testutil.AssertErrorIs(t, err, os.ErrNotExist, "missing file")
	testutil.AssertErrorIs(t, err, apperrors.ErrNotFound, "classified")
	testutil.AssertContains(t, err.Error(), "failed to open input", "context")
}

func TestRead_Delimiter(t *testing.T) {
	src := NewCSVSource("inline", CSVOptions{URLColumn: "URL", Comma: ';'}, logx.NewNop())
	tbl, err := src.Read(context.Background(), strings.NewReader("URL;n\nhttp://a.com/x,y;3\n"))
	testutil.AssertNoError(t, err, "read")
	testutil.AssertEqual(t, tbl.Rows[0][0].Str, "http://a.com/x,y", "comma kept in field")
}
