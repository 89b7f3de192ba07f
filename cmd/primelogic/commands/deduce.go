package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tessark/primelogic/config"
	"github.com/tessark/primelogic/kb"
	"github.com/tessark/primelogic/logger"
	"github.com/tessark/primelogic/reason"
	"github.com/tessark/primelogic/sym"
)

// DeduceCmd answers a single entailment query against a knowledge base.
var DeduceCmd = &cobra.Command{
	Use:   "deduce <subject> <predicate> <object>",
	Short: "Ask whether a fact is entailed by a knowledge base",
	Long: `Run a backward-chaining entailment query for the triple
<subject> <predicate> <object> and print the derivation chain.

By default the query runs against the built-in demonstration knowledge
base. Pass --kb to load facts and rules from a TOML file instead.`,
	Args: cobra.ExactArgs(3),
	RunE: runDeduceCommand,
}

func init() {
	DeduceCmd.Flags().String("kb", "", "Path to a TOML knowledge base file")
}

func runDeduceCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	kbPath, _ := cmd.Flags().GetString("kb")
	if kbPath == "" {
		kbPath = cfg.KB.Path
	}

	var store *kb.Store
	if kbPath != "" {
		store, err = loadKBFile(cfg, kbPath)
		if err != nil {
			pterm.Error.Printf("Failed to load knowledge base: %v", err)
			return err
		}
	} else {
		store = demoStore(cfg)
	}

	query := kb.Fact{Subject: args[0], Predicate: args[1], Object: args[2]}
	logger.Infow("running deduction query",
		"subject", query.Subject,
		"predicate", query.Predicate,
		"object", query.Object,
		"kb", kbPath)

	reasoner := reason.New(store.Codec(), logger.Logger)
	result := reasoner.DeduceFact(store, query)

	if result.Entailed {
		pterm.Success.Printf("%s %s %s %s", sym.Entails, query.Subject, query.Predicate, query.Object)
	} else {
		pterm.Error.Printf("%s %s %s %s", sym.NotEntails, query.Subject, query.Predicate, query.Object)
	}
	pterm.Printf("  %s %s", sym.Therefore, result.Explanation)
	if result.Equation != "" {
		pterm.Printf("  %s", result.Equation)
	}
	return nil
}
