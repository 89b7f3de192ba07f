package codec

import (
	"github.com/tessark/primelogic/errors"
)

// EncodeInt encodes a signed non-zero integer as a prime-exponent map.
// Zero has no valid encoding and returns errors.ErrInvalidEncoding.
//
// Factorization trial-divides by the registered primes in increasing
// order while their square does not exceed the remainder; a remainder
// above 1 that survives is recorded directly as a factor even when it is
// not a registered concept prime.
//
// The sign-marker prime doubles as an ordinary factor of the magnitude,
// so its exponent is split by parity: the magnitude's marker-prime
// exponent is stored doubled, and negativity adds 1. Decoding reads the
// sign from the low bit and the factor exponent from the rest, which
// keeps the sign flag from ever colliding with a true factor and makes
// encode/decode exact for every non-zero integer.
func (c *Codec) EncodeInt(n int) (ExponentMap, error) {
	if n == 0 {
		return nil, errors.Wrap(errors.ErrInvalidEncoding, "zero cannot be encoded as a prime product")
	}

	enc := ExponentMap{}
	if n < 0 {
		enc[c.signPrime] = 1
		n = -n
	}

	remaining := n
	known := c.ConceptCount()
	for i := 0; i < known; i++ {
		p := c.sieve.Get(i)
		if p*p > remaining {
			break
		}
		step := 1
		if p == c.signPrime {
			step = 2
		}
		for remaining%p == 0 {
			enc[p] += step
			remaining /= p
		}
	}
	if remaining > 1 {
		if remaining == c.signPrime {
			enc[remaining] += 2
		} else {
			enc[remaining]++
		}
	}
	if enc[c.signPrime] == 0 {
		delete(enc, c.signPrime)
	}
	return enc, nil
}

// DecodeInt decodes a prime-exponent map back to an integer: the product
// of prime^exponent over all entries, where the sign marker contributes
// its exponent's high bits as a factor and its low bit as the sign —
// negative iff the exponent is odd.
func (c *Codec) DecodeInt(m ExponentMap) int {
	sign := 1
	result := 1
	for p, exp := range m {
		if p == c.signPrime {
			if exp%2 != 0 {
				sign = -sign
			}
			exp /= 2
		}
		for i := 0; i < exp; i++ {
			result *= p
		}
	}
	return sign * result
}

// Multiply combines two encodings by summing exponents: E(a)⊗E(b) =
// E(a·b). The sign marker's exponent is parity-packed, so its factor
// halves add and its sign bits cancel pairwise rather than summing —
// two negative operands leave no marker behind.
func (c *Codec) Multiply(a, b ExponentMap) ExponentMap {
	result := make(ExponentMap, len(a)+len(b))
	for p, e := range a {
		if p != c.signPrime {
			result[p] += e
		}
	}
	for p, e := range b {
		if p != c.signPrime {
			result[p] += e
		}
	}
	ea, eb := a[c.signPrime], b[c.signPrime]
	if exp := (ea/2+eb/2)*2 + (ea^eb)&1; exp != 0 {
		result[c.signPrime] = exp
	}
	return result
}

// Divide cancels b's exponents out of a: E(a)⊘E(b) = E(a/b) when a is
// divisible by b. The sign marker's exponent is parity-packed, so it
// splits into factor and sign components: the factor halves subtract
// like any other prime (underflow returns errors.ErrNotDivisible), the
// sign bits cancel by parity and never fail. Any other prime whose
// exponent in b exceeds its exponent in a returns
// errors.ErrNotDivisible.
func (c *Codec) Divide(a, b ExponentMap) (ExponentMap, error) {
	result := a.Clone()
	for p, e := range b {
		if p == c.signPrime {
			ea := result[p]
			if ea/2 < e/2 {
				return nil, errors.Wrapf(errors.ErrNotDivisible, "sign marker prime %d requires factor exponent %d, have %d", p, e/2, ea/2)
			}
			exp := (ea/2-e/2)*2 + (ea^e)&1
			if exp == 0 {
				delete(result, p)
			} else {
				result[p] = exp
			}
			continue
		}
		have := result[p]
		if have < e {
			return nil, errors.Wrapf(errors.ErrNotDivisible, "prime %d requires exponent %d, have %d", p, e, have)
		}
		result[p] = have - e
		if result[p] == 0 {
			delete(result, p)
		}
	}
	return result, nil
}

// Add computes E(a)⊕E(b) = E(a+b) by decoding both operands, adding in
// the integers, and re-encoding. A zero sum inherits EncodeInt's
// rejection.
func (c *Codec) Add(a, b ExponentMap) (ExponentMap, error) {
	return c.EncodeInt(c.DecodeInt(a) + c.DecodeInt(b))
}

// Subtract computes E(a)⊖E(b) = E(a-b) by decoding, subtracting, and
// re-encoding. A zero difference inherits EncodeInt's rejection.
func (c *Codec) Subtract(a, b ExponentMap) (ExponentMap, error) {
	return c.EncodeInt(c.DecodeInt(a) - c.DecodeInt(b))
}
