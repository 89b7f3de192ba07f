// Package prime supplies prime numbers on demand from an incremental
// Eratosthenes sieve.
package prime

import "sync"

// DefaultInitialLimit is the upper bound of the first sieve pass when no
// explicit limit is configured.
const DefaultInitialLimit = 1000

// Sieve generates the prime sequence lazily. Get(i) returns the i-th prime
// (0-indexed, Get(0) == 2); the sieve bound doubles whenever an index past
// the generated range is requested. The sequence is append-only, so the
// same index always yields the same prime.
type Sieve struct {
	mu     sync.Mutex
	primes []int
	limit  int
}

// NewSieve creates a sieve with the given initial upper bound. Bounds
// below 2 fall back to DefaultInitialLimit.
func NewSieve(initialLimit int) *Sieve {
	if initialLimit < 2 {
		initialLimit = DefaultInitialLimit
	}
	s := &Sieve{}
	s.growTo(initialLimit)
	return s
}

// Get returns the index-th prime (0-based). Index must be non-negative.
func (s *Sieve) Get(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for index >= len(s.primes) {
		next := s.limit * 2
		if next < DefaultInitialLimit {
			next = DefaultInitialLimit
		}
		s.growTo(next)
	}
	return s.primes[index]
}

// Count returns how many primes have been generated so far.
func (s *Sieve) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.primes)
}

// growTo extends the sieve bound to n, appending only primes in the new
// range (old primes are never recomputed or reordered).
func (s *Sieve) growTo(n int) {
	if n <= s.limit {
		return
	}
	composite := make([]bool, n+1)
	for p := 2; p*p <= n; p++ {
		if composite[p] {
			continue
		}
		for multiple := p * p; multiple <= n; multiple += p {
			composite[multiple] = true
		}
	}
	start := s.limit + 1
	if start < 2 {
		start = 2
	}
	for i := start; i <= n; i++ {
		if !composite[i] {
			s.primes = append(s.primes, i)
		}
	}
	s.limit = n
}
