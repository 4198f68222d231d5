// internal/core/usecases/profile.go
package usecases

import (
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"

	"urlfeat/internal/core/domain"
	"urlfeat/internal/features"
	"urlfeat/internal/platform/cache"
	"urlfeat/internal/platform/validator"
)

// domainColumn is the flattened column the profile reads hosts from.
var domainColumn = features.LexicalPrefix + features.FieldDomainNoPrefix

// domainCacheSize bounds the authority -> eTLD+1 memo.
const domainCacheSize = 4096

// domainProfile counts registrable domains (eTLD+1) over the lexical
// domain column. IP literals and hosts without a known suffix count as
// themselves. It returns the number of distinct domains and the top n.
// resolved memoizes registrableDomain and may be nil.
func domainProfile(tbl *domain.Table, n int, resolved *cache.LRU[string, string]) (int, []domain.DomainCount) {
	if resolved == nil {
		resolved = cache.New[string, string](domainCacheSize)
	}
	values, err := tbl.Column(domainColumn)
	if err != nil {
		return 0, nil
	}

	counts := make(map[string]int)
	for _, v := range values {
		if v.IsNull() || v.Kind != domain.KindString {
			continue
		}
		if reg := resolved.GetOrCompute(v.Str, registrableDomain); reg != "" {
			counts[reg]++
		}
	}

	top := make([]domain.DomainCount, 0, len(counts))
	for d, c := range counts {
		top = append(top, domain.DomainCount{Domain: d, Count: c})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Domain < top[j].Domain
	})
	if len(top) > n {
		top = top[:n]
	}
	return len(counts), top
}

// registrableDomain reduces an authority to its eTLD+1. IP literals and
// hosts that are not valid hostnames are returned as they are.
func registrableDomain(authority string) string {
	host := strings.ToLower(strings.TrimSuffix(validator.HostOnly(authority), "."))
	if host == "" {
		return ""
	}
	if validator.IsIP(host) || !validator.IsDomain(host) {
		return host
	}
	reg, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return reg
}
