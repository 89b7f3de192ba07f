package reason

import (
	"strings"

	"github.com/tessark/primelogic/kb"
)

// universalChain returns the category chain [subj, …, target] linked by
// universal rules, or nil when no chain exists. The depth-first search
// tracks visited category names, not encodings, so rule cycles cannot
// loop it. Names are case-folded to match the registry's canonical form.
func (r *Reasoner) universalChain(store *kb.Store, subj, target string, visited map[string]struct{}) []string {
	subj = strings.ToLower(subj)
	target = strings.ToLower(target)
	if subj == target {
		return []string{subj}
	}
	if _, seen := visited[subj]; seen {
		return nil
	}
	visited[subj] = struct{}{}

	subjPrime := r.codec.GetOrCreatePrime(subj)
	for _, rule := range store.QuantifiedRules() {
		if rule.Kind != kb.KindUniversal || rule.CategoryPrime != subjPrime {
			continue
		}
		property, ok := r.codec.NameOf(rule.PropertyPrime)
		if !ok {
			continue
		}
		if chain := r.universalChain(store, property, target, visited); chain != nil {
			return append([]string{subj}, chain...)
		}
	}
	return nil
}
