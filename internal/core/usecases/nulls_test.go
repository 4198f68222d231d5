// internal/core/usecases/nulls_test.go
package usecases

import (
	"testing"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/testutil"
)

func nullsTable(t *testing.T) *domain.Table {
	t.Helper()
	schema, err := domain.NewSchema(
		domain.ColumnSpec{Name: "a", Kind: domain.KindString},
		domain.ColumnSpec{Name: "opt", Kind: domain.KindString, Optional: true},
	)
	testutil.AssertNoError(t, err, "schema")
	tbl := domain.NewTable(schema)
	tbl.Rows = []domain.Row{
		{domain.StringValue("x"), domain.StringValue("y")},
		{domain.StringValue("x"), domain.NullValue()},
		{domain.NullValue(), domain.StringValue("y")},
		{domain.NullValue(), domain.NullValue()},
	}
	return tbl
}

func TestDropIncomplete(t *testing.T) {
	tests := []struct {
		name        string
		policy      domain.NullPolicy
		wantDropped int
		wantRows    int
	}{
		{"any", domain.NullPolicyAny, 3, 1},
		{"required", domain.NullPolicyRequired, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := nullsTable(t)
			dropped := dropIncomplete(tbl, tt.policy)
			testutil.AssertEqual(t, dropped, tt.wantDropped, "dropped")
			testutil.AssertEqual(t, tbl.Len(), tt.wantRows, "remaining")
			for _, r := range tbl.Rows {
				testutil.AssertFalse(t, r[0].IsNull(), "required column never null")
			}
		})
	}
}

func TestDropIncomplete_EmptyTable(t *testing.T) {
	tbl := nullsTable(t)
	tbl.Rows = nil
	testutil.AssertEqual(t, dropIncomplete(tbl, domain.NullPolicyAny), 0, "nothing to drop")
}
