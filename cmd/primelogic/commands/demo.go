package commands

import (
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tessark/primelogic/config"
	"github.com/tessark/primelogic/kb"
	"github.com/tessark/primelogic/logger"
	"github.com/tessark/primelogic/reason"
	"github.com/tessark/primelogic/sym"
)

// DemoCmd runs the built-in demonstration knowledge base through a
// batch of queries and prints each deduction with its explanation.
var DemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration knowledge base",
	Long: `Build the classic demonstration knowledge base (Socrates, mortality,
category hierarchies) and run a set of queries against it, showing the
derivation chain for each answer.`,
	RunE: runDemoCommand,
}

func runDemoCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sessionID := uuid.New().String()
	logger.Infow("starting demo session", "session_id", sessionID)

	store := demoStore(cfg)
	reasoner := reason.New(store.Codec(), logger.Logger)

	pterm.DefaultHeader.WithFullWidth().Printf("PrimeLogic Deduction Demo")
	pterm.Println()
	pterm.Info.Printf("Knowledge base: %d facts, %d quantified rules, %d standard rules",
		len(store.Facts()), len(store.QuantifiedRules()), len(store.StandardRules()))
	pterm.Println()

	queries := []kb.Fact{
		{Subject: "socrates", Predicate: "is", Object: "socrates"},
		{Subject: "socrates", Predicate: "is", Object: "human"},
		{Subject: "socrates", Predicate: "is", Object: "mortal"},
		{Subject: "socrates", Predicate: "is", Object: "animal"},
		{Subject: "socrates", Predicate: "is", Object: "wise"},
		{Subject: "plato", Predicate: "is", Object: "wise"},
		{Subject: "hilbert_spaces", Predicate: "is", Object: "normed_spaces"},
		{Subject: "bird", Predicate: "can", Object: "fly"},
		{Subject: "penguin", Predicate: "can", Object: "fly"},
		{Subject: "socrates", Predicate: "is", Object: "bird"},
	}

	for _, q := range queries {
		result := reasoner.DeduceFact(store, q)
		if result.Entailed {
			pterm.Success.Printf("%s %s %s %s", sym.Entails, q.Subject, q.Predicate, q.Object)
		} else {
			pterm.Error.Printf("%s %s %s %s", sym.NotEntails, q.Subject, q.Predicate, q.Object)
		}
		pterm.Printf("  %s %s", sym.Therefore, result.Explanation)
		if result.Equation != "" {
			pterm.Printf("  %s", result.Equation)
		}
		pterm.Println()
	}

	pterm.Success.Printf("Demo session complete")
	logger.Infow("demo session complete", "session_id", sessionID, "queries", len(queries))
	return nil
}
