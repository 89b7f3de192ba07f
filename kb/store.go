package kb

import (
	"sync"

	"go.uber.org/zap"

	"github.com/tessark/primelogic/codec"
	"github.com/tessark/primelogic/errors"
)

// StoredFact pairs a fact with its encoding. The original triple is
// retained for explanation text and for transitive lookups by raw string
// comparison.
type StoredFact struct {
	Fact     Fact
	Encoding codec.ExponentMap
}

// QuantifiedRule is the stored form of a universal or capability rule:
// the category, property-or-capability, and fixed predicate primes are
// pre-resolved at insertion, alongside the encoded condition and
// conclusion facts.
type QuantifiedRule struct {
	Kind           RuleKind
	CategoryPrime  int
	PropertyPrime  int
	PredicatePrime int
	Condition      codec.ExponentMap
	Conclusion     codec.ExponentMap
}

// StandardRuleRecord is the stored form of a standard rule: the
// condition and conclusion triples paired with their encodings. The
// triples keep their role order; the encoding alone cannot recover it
// because the prime product is commutative.
type StandardRuleRecord struct {
	Conditions []StoredFact
	Conclusion StoredFact
}

// Store holds the ordered collections of encoded facts and rules.
// Insertion order is preserved; it matters only for explanation
// ordering, not correctness — matching is a predicate scan, not an
// indexed lookup.
//
// Facts and rules are immutable once stored. Mutation is expected only
// between queries, never interleaved with an in-flight deduction.
type Store struct {
	mu         sync.RWMutex
	codec      *codec.Codec
	log        *zap.SugaredLogger
	facts      []StoredFact
	quantified []QuantifiedRule
	standard   []StandardRuleRecord
}

// NewStore creates an empty knowledge store over the given codec. A nil
// logger is replaced with a no-op logger.
func NewStore(c *codec.Codec, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{
		codec: c,
		log:   log.Named("kb"),
	}
}

// Codec returns the codec this store encodes with.
func (s *Store) Codec() *codec.Codec {
	return s.codec
}

// EncodeFact encodes a triple as the product of the three concept
// encodings in subject, predicate, object order. When two roles name the
// same concept the exponents combine instead of staying three distinct
// factors; see DecodeFact for the consequence.
func (s *Store) EncodeFact(f Fact) codec.ExponentMap {
	enc := s.codec.Multiply(s.codec.EncodeSymbol(f.Subject), s.codec.EncodeSymbol(f.Predicate))
	return s.codec.Multiply(enc, s.codec.EncodeSymbol(f.Object))
}

// DecodeFact decodes a fact encoding back into its triple. The second
// return is false unless the encoding factors into exactly three
// registered concept primes (counting multiplicity, sign marker
// excluded) — a triple that used one concept in two roles has exponent 2
// on that prime and still decodes, with the shared concept filling the
// roles in prime order.
func (s *Store) DecodeFact(enc codec.ExponentMap) (Fact, bool) {
	primes := make([]int, 0, 3)
	for _, p := range enc.Primes() {
		if p == s.codec.SignPrime() {
			continue
		}
		for i := 0; i < enc[p]; i++ {
			primes = append(primes, p)
		}
	}
	if len(primes) != 3 {
		return Fact{}, false
	}

	names := make([]string, 3)
	for i, p := range primes {
		name, ok := s.codec.NameOf(p)
		if !ok {
			return Fact{}, false
		}
		names[i] = name
	}
	return Fact{Subject: names[0], Predicate: names[1], Object: names[2]}, true
}

// AddFact encodes the triple and appends it to the store, returning the
// stored encoding. Names are stored in their canonical case-folded form,
// matching the concept registry.
func (s *Store) AddFact(subject, predicate, object string) codec.ExponentMap {
	f := Fact{Subject: subject, Predicate: predicate, Object: object}.Canonical()
	enc := s.EncodeFact(f)

	s.mu.Lock()
	s.facts = append(s.facts, StoredFact{Fact: f, Encoding: enc})
	s.mu.Unlock()

	s.log.Debugw("fact added", "fact", f.String(), "encoding", enc.String())
	return enc
}

// AddRule encodes the rule once and appends its stored record. Standard
// rules must carry at least one condition.
func (s *Store) AddRule(rule Rule) error {
	switch r := rule.(type) {
	case UniversalRule:
		s.addQuantified(KindUniversal, r.Category, r.Property)
	case CapabilityRule:
		s.addQuantified(KindCapability, r.Category, r.Capability)
	case StandardRule:
		if len(r.Conditions) == 0 {
			return errors.NewInvalidRuleError("standard rule %q has no conditions", r.Conclusion.String())
		}
		conclusion := r.Conclusion.Canonical()
		record := StandardRuleRecord{
			Conditions: make([]StoredFact, 0, len(r.Conditions)),
			Conclusion: StoredFact{Fact: conclusion, Encoding: s.EncodeFact(conclusion)},
		}
		for _, cond := range r.Conditions {
			f := cond.Canonical()
			record.Conditions = append(record.Conditions, StoredFact{Fact: f, Encoding: s.EncodeFact(f)})
		}
		s.mu.Lock()
		s.standard = append(s.standard, record)
		s.mu.Unlock()
		s.log.Debugw("standard rule added", "conditions", len(r.Conditions), "conclusion", r.Conclusion.String())
	default:
		return errors.NewInvalidRuleError("unknown rule variant %T", rule)
	}
	return nil
}

func (s *Store) addQuantified(kind RuleKind, category, property string) {
	predicate := kind.Predicate()
	record := QuantifiedRule{
		Kind:           kind,
		CategoryPrime:  s.codec.GetOrCreatePrime(category),
		PropertyPrime:  s.codec.GetOrCreatePrime(property),
		PredicatePrime: s.codec.GetOrCreatePrime(predicate),
		Condition:      s.EncodeFact(Fact{Subject: Variable, Predicate: PredicateIs, Object: category}),
		Conclusion:     s.EncodeFact(Fact{Subject: Variable, Predicate: predicate, Object: property}),
	}

	s.mu.Lock()
	s.quantified = append(s.quantified, record)
	s.mu.Unlock()

	s.log.Debugw("quantified rule added", "kind", kind.String(), "category", category, "property", property)
}

// Facts returns the stored facts in insertion order. The returned slice
// is shared; callers must not modify it.
func (s *Store) Facts() []StoredFact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.facts
}

// QuantifiedRules returns the stored universal and capability rules in
// insertion order. The returned slice is shared; callers must not
// modify it.
func (s *Store) QuantifiedRules() []QuantifiedRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quantified
}

// StandardRules returns the stored standard rules in insertion order.
// The returned slice is shared; callers must not modify it.
func (s *Store) StandardRules() []StandardRuleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.standard
}
