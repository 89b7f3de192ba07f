// Package reason answers entailment queries against a knowledge store
// using backward chaining.
//
// Deduction is boolean with a textual justification: every query resolves
// to a definite result and an explanation trace, never an error. Search
// state is call-scoped, so one Reasoner serves concurrent queries.
package reason

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tessark/primelogic/codec"
	"github.com/tessark/primelogic/kb"
	"github.com/tessark/primelogic/sym"
)

// Result is the outcome of a deduction: whether the query is entailed, a
// human-readable derivation trace, and — for hierarchy derivations — an
// equation-style chain such as "A ⊆ B ⊆ C".
type Result struct {
	Entailed    bool
	Explanation string
	Equation    string
}

// Reasoner performs backward-chaining deduction over a knowledge store.
// It holds no state between queries; the per-query expanding set and
// depth counter are threaded through the recursion explicitly.
type Reasoner struct {
	codec *codec.Codec
	log   *zap.SugaredLogger
}

// New creates a reasoner over the given codec. A nil logger is replaced
// with a no-op logger.
func New(c *codec.Codec, log *zap.SugaredLogger) *Reasoner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Reasoner{codec: c, log: log.Named("reason")}
}

// Deduce reports whether the query triple is entailed by the store.
//
// Termination is guaranteed only by the cycle guard, which halts exact
// re-expansion of a fact already on the current search path; there is no
// depth ceiling. The expanding set is keyed by the fact's string form
// and shared across the whole search tree of this one call.
func (r *Reasoner) Deduce(store *kb.Store, subject, predicate, object string) Result {
	return r.DeduceFact(store, kb.Fact{Subject: subject, Predicate: predicate, Object: object})
}

// DeduceFact is Deduce for an already-built Fact. The query is
// canonicalized to the registry's case-folded concept form before the
// search starts, so predicate matching agrees with concept interning.
func (r *Reasoner) DeduceFact(store *kb.Store, query kb.Fact) Result {
	query = query.Canonical()
	expanding := make(map[string]struct{})
	return r.deduce(store, query, expanding, 0)
}

// deduce is the recursive step. The decision order is part of the
// contract: cycle guard, identity axiom, universal-chain shortcut,
// direct containment, quantified rules, standard rules, transitive
// fallback, default.
func (r *Reasoner) deduce(store *kb.Store, query kb.Fact, expanding map[string]struct{}, depth int) Result {
	key := query.String()
	if _, seen := expanding[key]; seen {
		return Result{Explanation: fmt.Sprintf("Circular reasoning detected: %s", key)}
	}
	expanding[key] = struct{}{}

	r.log.Debugw("expanding query", "fact", key, "depth", depth)

	// Identity axiom: every category is trivially a member of itself.
	// This lets hierarchy rules apply to category names without explicit
	// self-membership facts.
	if query.Predicate == kb.PredicateIs && query.Subject == query.Object {
		return Result{
			Entailed:    true,
			Explanation: fmt.Sprintf("%s is itself by definition", query.Subject),
		}
	}

	// Transitive closure over universal rules: a directed path of
	// category edges from subject to object proves membership without
	// explicit facts for every hierarchy level.
	if query.Predicate == kb.PredicateIs {
		if chain := r.universalChain(store, query.Subject, query.Object, make(map[string]struct{})); len(chain) > 1 {
			parts := make([]string, 0, len(chain)-1)
			for i := 0; i < len(chain)-1; i++ {
				parts = append(parts, fmt.Sprintf("%s are %s", chain[i], chain[i+1]))
			}
			return Result{
				Entailed:    true,
				Explanation: strings.Join(parts, ", and "),
				Equation:    strings.Join(chain, " "+sym.Subset+" "),
			}
		}
	}

	qEnc := store.EncodeFact(query)

	// Direct containment: exact encoding equality against stored facts.
	for _, sf := range store.Facts() {
		if sf.Encoding.Equal(qEnc) {
			return Result{
				Entailed:    true,
				Explanation: fmt.Sprintf("Direct fact in knowledge base: %s", sf.Fact),
			}
		}
	}

	if res, ok := r.matchQuantified(store, query, expanding, depth); ok {
		return res
	}

	if res, ok := r.matchStandard(store, query, qEnc, expanding, depth); ok {
		return res
	}

	// Transitive fallback for hierarchical predicates: follow any stored
	// fact sharing the query's subject and predicate one hop toward the
	// object.
	if query.Predicate == kb.PredicateIs || query.Predicate == kb.PredicatePartOf {
		for _, sf := range store.Facts() {
			if sf.Fact.Subject != query.Subject || sf.Fact.Predicate != query.Predicate {
				continue
			}
			intermediate := kb.Fact{Subject: sf.Fact.Object, Predicate: query.Predicate, Object: query.Object}
			sub := r.deduce(store, intermediate, expanding, depth+1)
			if sub.Entailed {
				return Result{
					Entailed:    true,
					Explanation: fmt.Sprintf("%s %s %s, and %s", query.Subject, query.Predicate, sf.Fact.Object, sub.Explanation),
				}
			}
		}
	}

	return Result{Explanation: fmt.Sprintf("Could not deduce: %s", key)}
}

// matchQuantified tries every universal and capability rule whose fixed
// predicate and property match the query, recursively deducing the
// subject's membership in the rule's category.
func (r *Reasoner) matchQuantified(store *kb.Store, query kb.Fact, expanding map[string]struct{}, depth int) (Result, bool) {
	for _, rule := range store.QuantifiedRules() {
		if query.Predicate != rule.Kind.Predicate() {
			continue
		}
		if r.codec.GetOrCreatePrime(query.Object) != rule.PropertyPrime {
			continue
		}
		category, ok := r.codec.NameOf(rule.CategoryPrime)
		if !ok {
			continue
		}

		membership := kb.Fact{Subject: query.Subject, Predicate: kb.PredicateIs, Object: category}
		sub := r.deduce(store, membership, expanding, depth+1)
		if !sub.Entailed {
			continue
		}

		var equation string
		switch {
		case sub.Equation != "":
			equation = sub.Equation + " " + sym.Subset + " " + query.Object
		case rule.Kind == kb.KindUniversal:
			equation = fmt.Sprintf("%s %s %s %s %s", query.Subject, sym.Element, category, sym.Subset, query.Object)
		default:
			equation = fmt.Sprintf("%sx%s%s: x can %s", sym.ForAll, sym.Element, category, query.Object)
		}

		return Result{
			Entailed:    true,
			Explanation: fmt.Sprintf("%s, and all %s %s %s", sub.Explanation, category, rule.Kind.Connective(), query.Object),
			Equation:    equation,
		}, true
	}
	return Result{}, false
}

// matchStandard tries every standard rule whose conclusion matches the
// query encoding, either exactly or after substituting the query's
// subject for the rule variable. All conditions must be recursively
// deduced. Conditions are bound on the retained triples, not recovered
// from their encodings: the prime product is commutative, so an
// encoding cannot tell the roles apart.
func (r *Reasoner) matchStandard(store *kb.Store, query kb.Fact, qEnc codec.ExponentMap, expanding map[string]struct{}, depth int) (Result, bool) {
	varPrime := r.codec.GetOrCreatePrime(kb.Variable)
	subjectEnc := r.codec.EncodeSymbol(query.Subject)

	for _, rule := range store.StandardRules() {
		conclusion := r.substituteVariable(rule.Conclusion.Encoding, varPrime, subjectEnc)
		if !conclusion.Equal(qEnc) {
			continue
		}

		explanations := make([]string, 0, len(rule.Conditions))
		allOK := true
		for _, cond := range rule.Conditions {
			sub := r.deduce(store, cond.Fact.Bind(query.Subject), expanding, depth+1)
			if !sub.Entailed {
				allOK = false
				break
			}
			explanations = append(explanations, sub.Explanation)
		}
		if allOK {
			return Result{
				Entailed:    true,
				Explanation: fmt.Sprintf("%s, which implies %s", strings.Join(explanations, ", "), query),
			}, true
		}
	}
	return Result{}, false
}

// substituteVariable replaces every occurrence of the rule variable's
// prime with the substitute encoding. Encodings without the variable are
// returned unchanged.
func (r *Reasoner) substituteVariable(enc codec.ExponentMap, varPrime int, substitute codec.ExponentMap) codec.ExponentMap {
	count := enc[varPrime]
	if count == 0 {
		return enc
	}
	out, err := r.codec.Divide(enc, codec.ExponentMap{varPrime: count})
	if err != nil {
		// Unreachable: the exponent being divided out was read from enc.
		return enc
	}
	for i := 0; i < count; i++ {
		out = r.codec.Multiply(out, substitute)
	}
	return out
}
