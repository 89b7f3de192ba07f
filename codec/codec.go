// Package codec maps concepts to primes and encodes signed integers,
// concepts, and facts as prime-exponent maps.
//
// Every concept name (case-folded) is assigned exactly one prime, in
// first-seen order, from an incremental sieve. The mapping is bijective
// and append-only: no concept is ever reassigned or removed, so equality
// of encodings is equality of meaning. One prime is reserved ahead of any
// user concept as the sign marker for negative integers.
package codec

import (
	"strings"
	"sync"

	"github.com/tessark/primelogic/prime"
)

// SignConcept is the reserved name of the sign-marker prime. It never
// denotes a user concept.
const SignConcept = "_sign"

// Codec holds the concept-to-prime bijection and performs all encoding
// and arithmetic in the prime-exponent domain. Safe for concurrent use.
type Codec struct {
	mu             sync.RWMutex
	sieve          *prime.Sieve
	conceptToPrime map[string]int
	primeToConcept map[int]string
	nextIndex      int
	signPrime      int
}

// New creates a codec over a fresh sieve with the default initial bound.
func New() *Codec {
	return NewWithSieve(prime.NewSieve(prime.DefaultInitialLimit))
}

// NewWithSieve creates a codec over the given sieve. The sign-marker
// prime is reserved immediately, before any user concept.
func NewWithSieve(s *prime.Sieve) *Codec {
	c := &Codec{
		sieve:          s,
		conceptToPrime: make(map[string]int),
		primeToConcept: make(map[int]string),
	}
	c.signPrime = c.assign(SignConcept)
	return c
}

// assign interns a concept under the next unused prime. Caller must not
// hold c.mu.
func (c *Codec) assign(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.conceptToPrime[name]; ok {
		return p
	}
	p := c.sieve.Get(c.nextIndex)
	c.nextIndex++
	c.conceptToPrime[name] = p
	c.primeToConcept[p] = name
	return p
}

// GetOrCreatePrime returns the prime representing the given concept,
// assigning the next unused prime the first time the (case-folded) name
// is seen.
func (c *Codec) GetOrCreatePrime(name string) int {
	key := strings.ToLower(name)

	c.mu.RLock()
	p, ok := c.conceptToPrime[key]
	c.mu.RUnlock()
	if ok {
		return p
	}
	return c.assign(key)
}

// NameOf returns the concept registered under the given prime. The second
// return is false for primes that are not registered concepts, such as
// factors produced by integer factorization but never interned.
func (c *Codec) NameOf(p int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.primeToConcept[p]
	return name, ok
}

// SignPrime returns the reserved sign-marker prime.
func (c *Codec) SignPrime() int {
	return c.signPrime
}

// ConceptCount returns how many primes have been assigned, the sign
// marker included.
func (c *Codec) ConceptCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextIndex
}
