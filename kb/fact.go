// Package kb holds facts and rules in their prime-encoded form.
//
// A fact is a (subject, predicate, object) triple of concepts; its
// canonical encoding is the product of the three concept primes. Rules
// come in three variants — standard, universal, capability — and are
// encoded once at insertion time, never at query time.
package kb

import (
	"fmt"
	"strings"
)

// Fixed predicates with built-in reasoning semantics.
const (
	PredicateIs     = "is"
	PredicateCan    = "can"
	PredicatePartOf = "part of"
)

// Variable is the placeholder subject used when compiling quantified
// rules into condition/conclusion facts.
const Variable = "_x_"

// Fact is an ordered (subject, predicate, object) triple of concept
// names. Subject and object may name the same concept; the roles are
// syntactic, the concept lookups independent.
type Fact struct {
	Subject   string
	Predicate string
	Object    string
}

// String renders the triple as "subject predicate object". This string
// is also the key the reasoner's cycle guard tracks.
func (f Fact) String() string {
	return fmt.Sprintf("%s %s %s", f.Subject, f.Predicate, f.Object)
}

// Canonical returns the triple with each role case-folded to the
// registry's concept form.
func (f Fact) Canonical() Fact {
	return Fact{
		Subject:   strings.ToLower(f.Subject),
		Predicate: strings.ToLower(f.Predicate),
		Object:    strings.ToLower(f.Object),
	}
}

// Bind returns the triple with every role equal to Variable replaced by
// the given concept name.
func (f Fact) Bind(name string) Fact {
	if f.Subject == Variable {
		f.Subject = name
	}
	if f.Predicate == Variable {
		f.Predicate = name
	}
	if f.Object == Variable {
		f.Object = name
	}
	return f
}
