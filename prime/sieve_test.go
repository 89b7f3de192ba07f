package prime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFirstPrimes(t *testing.T) {
	s := NewSieve(100)

	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	for i, p := range want {
		assert.Equal(t, p, s.Get(i), "prime at index %d", i)
	}
}

func TestGetGrowsBeyondInitialLimit(t *testing.T) {
	// 25 primes below 100; asking for index 30 forces a regrow.
	s := NewSieve(100)

	assert.Equal(t, 127, s.Get(30))
	// The 100th prime
	assert.Equal(t, 547, s.Get(100))
}

func TestGetStableAcrossCalls(t *testing.T) {
	s := NewSieve(10)

	first := make([]int, 50)
	for i := range first {
		first[i] = s.Get(i)
	}
	// Force further growth, then re-read earlier indexes.
	s.Get(200)
	for i, p := range first {
		require.Equal(t, p, s.Get(i), "prime at index %d changed after regrow", i)
	}
}

func TestGetMonotonicallyIncreasing(t *testing.T) {
	s := NewSieve(2)

	prev := 0
	for i := 0; i < 300; i++ {
		p := s.Get(i)
		require.Greater(t, p, prev, "sequence must be strictly increasing at index %d", i)
		prev = p
	}
}

func TestTinyInitialLimitFallsBack(t *testing.T) {
	s := NewSieve(0)
	assert.Equal(t, 2, s.Get(0))
	assert.GreaterOrEqual(t, s.Count(), 1)
}
