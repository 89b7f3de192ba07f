package kb

// Rule is the closed set of rule variants a store accepts. Exactly three
// types implement it: StandardRule, UniversalRule, and CapabilityRule.
type Rule interface {
	isRule()
}

// StandardRule entails its conclusion when every condition holds. The
// condition list must be non-empty.
type StandardRule struct {
	Conditions []Fact
	Conclusion Fact
}

// UniversalRule states that all members of Category have Property,
// compiled for the fixed predicate "is".
type UniversalRule struct {
	Category string
	Property string
}

// CapabilityRule states that all members of Category can do Capability,
// compiled for the fixed predicate "can".
type CapabilityRule struct {
	Category   string
	Capability string
}

func (StandardRule) isRule()   {}
func (UniversalRule) isRule()  {}
func (CapabilityRule) isRule() {}

// RuleKind distinguishes the two quantified rule variants in their
// stored form.
type RuleKind int

const (
	KindUniversal RuleKind = iota
	KindCapability
)

// Predicate returns the fixed predicate a quantified rule kind matches.
func (k RuleKind) Predicate() string {
	if k == KindCapability {
		return PredicateCan
	}
	return PredicateIs
}

// Connective returns the verb used in explanation text: "are" for
// universal rules, "can" for capability rules.
func (k RuleKind) Connective() string {
	if k == KindCapability {
		return "can"
	}
	return "are"
}

func (k RuleKind) String() string {
	if k == KindCapability {
		return "capability"
	}
	return "universal"
}
