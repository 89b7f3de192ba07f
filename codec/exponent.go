package codec

import (
	"fmt"
	"sort"
	"strings"
)

// ExponentMap is the canonical representation of a non-zero integer or a
// concept/fact encoding: a map from prime to its positive exponent. Zero
// exponents are never stored, so the empty map denotes the integer 1.
//
// A concept encodes as a single prime at exponent 1; a fact as the product
// of its three concept primes. Negative integers carry the codec's sign
// marker prime at exponent 1.
type ExponentMap map[int]int

// Clone returns an independent copy of the map.
func (m ExponentMap) Clone() ExponentMap {
	out := make(ExponentMap, len(m))
	for p, e := range m {
		out[p] = e
	}
	return out
}

// Equal reports whether two encodings have the same primes with the same
// exponents. Fact containment checks reduce to this comparison.
func (m ExponentMap) Equal(other ExponentMap) bool {
	if len(m) != len(other) {
		return false
	}
	for p, e := range m {
		if other[p] != e {
			return false
		}
	}
	return true
}

// Primes returns the map's primes in increasing order.
func (m ExponentMap) Primes() []int {
	primes := make([]int, 0, len(m))
	for p := range m {
		primes = append(primes, p)
	}
	sort.Ints(primes)
	return primes
}

// String renders the factorization in increasing prime order, e.g.
// "2^1·3^2·7^1". The empty map renders as "1".
func (m ExponentMap) String() string {
	if len(m) == 0 {
		return "1"
	}
	parts := make([]string, 0, len(m))
	for _, p := range m.Primes() {
		parts = append(parts, fmt.Sprintf("%d^%d", p, m[p]))
	}
	return strings.Join(parts, "·")
}
