package codec

// EncodeSymbol encodes a concept as a single prime factor with exponent
// 1, interning the concept if it has not been seen before.
func (c *Codec) EncodeSymbol(name string) ExponentMap {
	return ExponentMap{c.GetOrCreatePrime(name): 1}
}

// DecodeSymbol decodes a one-factor encoding back to its concept name.
// The second return is false unless the map holds exactly one non-sign
// prime at exponent 1 that is a registered concept.
func (c *Codec) DecodeSymbol(m ExponentMap) (string, bool) {
	var found int
	count := 0
	for p := range m {
		if p == c.signPrime {
			continue
		}
		found = p
		count++
	}
	if count != 1 || m[found] != 1 {
		return "", false
	}
	return c.NameOf(found)
}
