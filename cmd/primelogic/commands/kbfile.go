package commands

import (
	"github.com/spf13/viper"

	"github.com/tessark/primelogic/codec"
	"github.com/tessark/primelogic/config"
	"github.com/tessark/primelogic/errors"
	"github.com/tessark/primelogic/kb"
	"github.com/tessark/primelogic/logger"
	"github.com/tessark/primelogic/prime"
)

// factSpec is a triple as declared in a knowledge base file.
type factSpec struct {
	Subject   string `mapstructure:"subject"`
	Predicate string `mapstructure:"predicate"`
	Object    string `mapstructure:"object"`
}

func (f factSpec) fact() kb.Fact {
	return kb.Fact{Subject: f.Subject, Predicate: f.Predicate, Object: f.Object}
}

// kbSpec is the TOML description of a knowledge base: facts plus the
// three rule variants.
type kbSpec struct {
	Facts      []factSpec `mapstructure:"facts"`
	Universal  []struct {
		Category string `mapstructure:"category"`
		Property string `mapstructure:"property"`
	} `mapstructure:"universal_rules"`
	Capability []struct {
		Category   string `mapstructure:"category"`
		Capability string `mapstructure:"capability"`
	} `mapstructure:"capability_rules"`
	Standard []struct {
		Conditions []factSpec `mapstructure:"conditions"`
		Conclusion factSpec   `mapstructure:"conclusion"`
	} `mapstructure:"standard_rules"`
}

// newStore creates an empty store over a fresh codec sized from config.
func newStore(cfg *config.Config) *kb.Store {
	sieve := prime.NewSieve(cfg.Prime.InitialSieveLimit)
	return kb.NewStore(codec.NewWithSieve(sieve), logger.Logger)
}

// loadKBFile builds a knowledge store from a TOML description.
func loadKBFile(cfg *config.Config, path string) (*kb.Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read knowledge base file %s", path)
	}

	var spec kbSpec
	if err := v.Unmarshal(&spec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal knowledge base from %s", path)
	}

	store := newStore(cfg)
	for _, f := range spec.Facts {
		store.AddFact(f.Subject, f.Predicate, f.Object)
	}
	for _, r := range spec.Universal {
		if err := store.AddRule(kb.UniversalRule{Category: r.Category, Property: r.Property}); err != nil {
			return nil, err
		}
	}
	for _, r := range spec.Capability {
		if err := store.AddRule(kb.CapabilityRule{Category: r.Category, Capability: r.Capability}); err != nil {
			return nil, err
		}
	}
	for _, r := range spec.Standard {
		rule := kb.StandardRule{Conclusion: r.Conclusion.fact()}
		for _, cond := range r.Conditions {
			rule.Conditions = append(rule.Conditions, cond.fact())
		}
		if err := store.AddRule(rule); err != nil {
			return nil, err
		}
	}

	logger.Infow("knowledge base loaded",
		"path", path,
		"facts", len(spec.Facts),
		"rules", len(spec.Universal)+len(spec.Capability)+len(spec.Standard))
	return store, nil
}

// demoStore builds the classic demonstration knowledge base.
func demoStore(cfg *config.Config) *kb.Store {
	store := newStore(cfg)

	store.AddFact("socrates", "is", "human")
	store.AddFact("plato", "is", "human")
	store.AddFact("human", "is", "mammal")
	store.AddFact("socrates", "is", "philosopher")

	// AddRule only fails for malformed standard rules; these are static.
	_ = store.AddRule(kb.UniversalRule{Category: "human", Property: "mortal"})
	_ = store.AddRule(kb.UniversalRule{Category: "mammal", Property: "animal"})
	_ = store.AddRule(kb.CapabilityRule{Category: "bird", Capability: "fly"})
	_ = store.AddRule(kb.StandardRule{
		Conditions: []kb.Fact{
			{Subject: kb.Variable, Predicate: "is", Object: "human"},
			{Subject: kb.Variable, Predicate: "is", Object: "philosopher"},
		},
		Conclusion: kb.Fact{Subject: kb.Variable, Predicate: "is", Object: "wise"},
	})
	_ = store.AddRule(kb.UniversalRule{Category: "hilbert_spaces", Property: "inner_product_spaces"})
	_ = store.AddRule(kb.UniversalRule{Category: "inner_product_spaces", Property: "normed_spaces"})

	return store
}
