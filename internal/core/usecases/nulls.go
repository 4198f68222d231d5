// internal/core/usecases/nulls.go
package usecases

import (
	"urlfeat/internal/core/domain"
)

// dropIncomplete removes rows holding nulls and returns how many were removed.
// Under NullPolicyAny every null counts; under NullPolicyRequired nulls in
// columns declared Optional are kept.
func dropIncomplete(tbl *domain.Table, policy domain.NullPolicy) int {
	if policy != domain.NullPolicyRequired {
		return tbl.Filter(func(r domain.Row) bool { return !r.HasNull() })
	}

	required := make([]int, 0, tbl.Schema.Len())
	for i, c := range tbl.Schema.Columns {
		if !c.Optional {
			required = append(required, i)
		}
	}
	return tbl.Filter(func(r domain.Row) bool {
		for _, i := range required {
			if r[i].IsNull() {
				return false
			}
		}
		return true
	})
}
