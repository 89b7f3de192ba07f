package reason_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessark/primelogic/codec"
	"github.com/tessark/primelogic/kb"
	"github.com/tessark/primelogic/reason"
)

// newClassicKB builds the canonical demonstration knowledge base.
func newClassicKB(t *testing.T) (*kb.Store, *reason.Reasoner) {
	t.Helper()
	c := codec.New()
	store := kb.NewStore(c, nil)

	store.AddFact("socrates", "is", "human")
	store.AddFact("plato", "is", "human")
	store.AddFact("human", "is", "mammal")
	store.AddFact("socrates", "is", "philosopher")

	require.NoError(t, store.AddRule(kb.UniversalRule{Category: "human", Property: "mortal"}))
	require.NoError(t, store.AddRule(kb.UniversalRule{Category: "mammal", Property: "animal"}))
	require.NoError(t, store.AddRule(kb.CapabilityRule{Category: "bird", Capability: "fly"}))
	require.NoError(t, store.AddRule(kb.StandardRule{
		Conditions: []kb.Fact{
			{Subject: kb.Variable, Predicate: "is", Object: "human"},
			{Subject: kb.Variable, Predicate: "is", Object: "philosopher"},
		},
		Conclusion: kb.Fact{Subject: kb.Variable, Predicate: "is", Object: "wise"},
	}))

	return store, reason.New(c, nil)
}

func TestIdentityAxiom(t *testing.T) {
	c := codec.New()
	store := kb.NewStore(c, nil)
	r := reason.New(c, nil)

	// Entailed even with an empty store.
	res := r.Deduce(store, "anything", "is", "anything")
	assert.True(t, res.Entailed)
	assert.Equal(t, "anything is itself by definition", res.Explanation)
}

func TestDirectFact(t *testing.T) {
	store, r := newClassicKB(t)

	res := r.Deduce(store, "socrates", "is", "human")
	assert.True(t, res.Entailed)
	assert.Equal(t, "Direct fact in knowledge base: socrates is human", res.Explanation)
}

func TestUniversalRuleOverDirectFact(t *testing.T) {
	store, r := newClassicKB(t)

	res := r.Deduce(store, "socrates", "is", "mortal")
	require.True(t, res.Entailed)
	assert.Equal(t, "Direct fact in knowledge base: socrates is human, and all human are mortal", res.Explanation)
	assert.Equal(t, "socrates ∈ human ⊆ mortal", res.Equation)
}

func TestUniversalRuleSecondSubject(t *testing.T) {
	store, r := newClassicKB(t)

	res := r.Deduce(store, "plato", "is", "mortal")
	assert.True(t, res.Entailed)
	assert.Contains(t, res.Explanation, "plato is human")
	assert.Contains(t, res.Explanation, "all human are mortal")
}

func TestTransitiveHierarchyEquation(t *testing.T) {
	c := codec.New()
	store := kb.NewStore(c, nil)
	r := reason.New(c, nil)

	require.NoError(t, store.AddRule(kb.UniversalRule{Category: "hilbert_spaces", Property: "inner_product_spaces"}))
	require.NoError(t, store.AddRule(kb.UniversalRule{Category: "inner_product_spaces", Property: "normed_spaces"}))

	res := r.Deduce(store, "hilbert_spaces", "is", "normed_spaces")
	require.True(t, res.Entailed)
	assert.Equal(t, "hilbert_spaces are inner_product_spaces, and inner_product_spaces are normed_spaces", res.Explanation)
	assert.Equal(t, "hilbert_spaces ⊆ inner_product_spaces ⊆ normed_spaces", res.Equation)
}

func TestCategoryMembershipInOwnSuperset(t *testing.T) {
	store, r := newClassicKB(t)

	// "human is mortal" holds through the universal rule even though no
	// explicit self-membership fact exists.
	res := r.Deduce(store, "human", "is", "mortal")
	assert.True(t, res.Entailed)
}

func TestCapabilityRulePositive(t *testing.T) {
	store, r := newClassicKB(t)

	// The category itself has the capability via the identity axiom.
	res := r.Deduce(store, "bird", "can", "fly")
	require.True(t, res.Entailed)
	assert.Contains(t, res.Explanation, "all bird can fly")
}

func TestCapabilityRuleMember(t *testing.T) {
	store, r := newClassicKB(t)
	store.AddFact("tweety", "is", "bird")

	res := r.Deduce(store, "tweety", "can", "fly")
	require.True(t, res.Entailed)
	assert.Contains(t, res.Explanation, "tweety is bird")
	assert.Contains(t, res.Explanation, "all bird can fly")
}

func TestCapabilityRuleNegative(t *testing.T) {
	store, r := newClassicKB(t)

	// Nothing ties penguin to bird.
	res := r.Deduce(store, "penguin", "can", "fly")
	assert.False(t, res.Entailed)
	assert.Equal(t, "Could not deduce: penguin can fly", res.Explanation)
}

func TestStandardRuleTwoConditions(t *testing.T) {
	store, r := newClassicKB(t)

	res := r.Deduce(store, "socrates", "is", "wise")
	require.True(t, res.Entailed)
	assert.Contains(t, res.Explanation, "socrates is human")
	assert.Contains(t, res.Explanation, "socrates is philosopher")
	assert.Contains(t, res.Explanation, "which implies socrates is wise")
}

func TestStandardRuleConditionFails(t *testing.T) {
	store, r := newClassicKB(t)

	// Plato is human but not a philosopher in this store.
	res := r.Deduce(store, "plato", "is", "wise")
	assert.False(t, res.Entailed)
}

func TestTransitiveFallbackIs(t *testing.T) {
	store, r := newClassicKB(t)

	// socrates is human, human is mammal; mammal reached by fact
	// chaining rather than universal rules.
	res := r.Deduce(store, "socrates", "is", "mammal")
	require.True(t, res.Entailed)
	assert.Contains(t, res.Explanation, "socrates is human")
	assert.Contains(t, res.Explanation, "Direct fact in knowledge base: human is mammal")
}

func TestTransitiveFallbackPartOf(t *testing.T) {
	c := codec.New()
	store := kb.NewStore(c, nil)
	r := reason.New(c, nil)

	store.AddFact("finger", "part of", "hand")
	store.AddFact("hand", "part of", "arm")

	res := r.Deduce(store, "finger", "part of", "arm")
	require.True(t, res.Entailed)
	assert.Contains(t, res.Explanation, "finger part of hand")
}

func TestTransitiveChainThroughRules(t *testing.T) {
	store, r := newClassicKB(t)

	// socrates -> human (fact) -> mammal (fact) -> animal (universal).
	res := r.Deduce(store, "socrates", "is", "animal")
	assert.True(t, res.Entailed)
}

func TestUniversalRuleCycleTerminates(t *testing.T) {
	c := codec.New()
	store := kb.NewStore(c, nil)
	r := reason.New(c, nil)

	require.NoError(t, store.AddRule(kb.UniversalRule{Category: "a", Property: "b"}))
	require.NoError(t, store.AddRule(kb.UniversalRule{Category: "b", Property: "a"}))

	// The loop must not hang; a direct edge exists, so this is entailed.
	res := r.Deduce(store, "a", "is", "b")
	assert.True(t, res.Entailed)

	// No edge leads to c; the DFS must give up rather than loop.
	res = r.Deduce(store, "a", "is", "c")
	assert.False(t, res.Entailed)
}

func TestFactCycleTerminates(t *testing.T) {
	c := codec.New()
	store := kb.NewStore(c, nil)
	r := reason.New(c, nil)

	store.AddFact("a", "is", "b")
	store.AddFact("b", "is", "a")

	res := r.Deduce(store, "a", "is", "c")
	assert.False(t, res.Entailed)
	assert.Contains(t, res.Explanation, "Could not deduce")
}

func TestMalformedStandardRuleSkipped(t *testing.T) {
	store, r := newClassicKB(t)

	// Simulate a corrupted rule record: a conclusion encoding whose
	// primes were never interned as concepts can never match a query,
	// so the rule must be skipped without failing the query.
	records := store.StandardRules()
	require.NotEmpty(t, records)
	records[0].Conclusion.Encoding = codec.ExponentMap{9973: 1, 9967: 1, 9949: 1}

	res := r.Deduce(store, "socrates", "is", "wise")
	assert.False(t, res.Entailed, "rule with unmatchable conclusion must not fire")

	// Unrelated deductions are unaffected.
	assert.True(t, r.Deduce(store, "socrates", "is", "mortal").Entailed)
}

func TestStandardRuleDerivedCondition(t *testing.T) {
	c := codec.New()
	store := kb.NewStore(c, nil)
	r := reason.New(c, nil)

	// Interning the rule's concepts before the fact's puts the
	// condition's predicate prime above its object prime, so recovering
	// roles from the commutative encoding would scramble the triple.
	require.NoError(t, store.AddRule(kb.UniversalRule{Category: "human", Property: "mortal"}))
	store.AddFact("socrates", "is", "human")
	require.NoError(t, store.AddRule(kb.StandardRule{
		Conditions: []kb.Fact{{Subject: kb.Variable, Predicate: "is", Object: "mortal"}},
		Conclusion: kb.Fact{Subject: kb.Variable, Predicate: "is", Object: "finite"},
	}))

	require.True(t, r.Deduce(store, "socrates", "is", "mortal").Entailed)

	// The condition is not a direct fact; it must itself be derived
	// through the universal rule.
	res := r.Deduce(store, "socrates", "is", "finite")
	require.True(t, res.Entailed)
	assert.Contains(t, res.Explanation, "which implies socrates is finite")
}

func TestConcurrentDeduceCallsIsolated(t *testing.T) {
	store, r := newClassicKB(t)

	// Search state is call-scoped; parallel queries on one reasoner must
	// not corrupt each other's cycle guards.
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, r.Deduce(store, "socrates", "is", "mortal").Entailed)
			assert.False(t, r.Deduce(store, "penguin", "can", "fly").Entailed)
		}()
	}
	wg.Wait()
}

func TestDeduceFactEquivalentToDeduce(t *testing.T) {
	store, r := newClassicKB(t)

	byStrings := r.Deduce(store, "socrates", "is", "mortal")
	byFact := r.DeduceFact(store, kb.Fact{Subject: "socrates", Predicate: "is", Object: "mortal"})
	assert.Equal(t, byStrings, byFact)
}

func TestCaseInsensitiveConcepts(t *testing.T) {
	store, r := newClassicKB(t)

	res := r.Deduce(store, "Socrates", "IS", "Mortal")
	assert.True(t, res.Entailed)
}
