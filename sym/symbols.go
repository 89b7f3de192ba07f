// Package sym defines canonical symbols for primelogic operations.
// These symbols are stable across CLI output, equation strings, and
// documentation.
package sym

// Logic and set-theory glyphs used in equation strings.
const (
	Entails    = "⊨" // query is entailed by the knowledge base
	NotEntails = "⊭" // query is not entailed
	Subset     = "⊆" // category hierarchy edge (universal rule)
	Element    = "∈" // membership of an individual in a category
	ForAll     = "∀" // capability rule quantifier
	Therefore  = "∴" // conclusion marker in derivations
)

// Encoded-domain operator glyphs.
const (
	Tensor = "⊗" // multiplication of encodings (exponent sum)
	OSlash = "⊘" // division of encodings (exponent difference)
	OPlus  = "⊕" // addition via decode/re-encode
	OMinus = "⊖" // subtraction via decode/re-encode
)

// Names maps each glyph to its canonical name for display and debugging.
var Names = map[string]string{
	Entails:    "entails",
	NotEntails: "not-entails",
	Subset:     "subset",
	Element:    "element",
	ForAll:     "for-all",
	Therefore:  "therefore",
	Tensor:     "tensor",
	OSlash:     "o-slash",
	OPlus:      "o-plus",
	OMinus:     "o-minus",
}

// Name returns the canonical name for a glyph, or "unknown" if the glyph
// is not registered.
func Name(glyph string) string {
	if n, ok := Names[glyph]; ok {
		return n
	}
	return "unknown"
}
