package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessark/primelogic/cmd/primelogic/commands"
	"github.com/tessark/primelogic/config"
	"github.com/tessark/primelogic/logger"
)

var rootCmd = &cobra.Command{
	Use:   "primelogic",
	Short: "primelogic - prime-encoded knowledge representation and inference",
	Long: `primelogic - Symbolic reasoning in the prime-encoded domain.

Concepts are mapped one-to-one to prime numbers and facts to products of
three concept primes, so equality of meaning reduces to equality of
integers. A backward-chaining reasoner answers entailment queries with a
textual derivation trace.

Available commands:
  demo    - Build the demonstration knowledge base and run canonical queries
  deduce  - Ask whether a fact is entailed by a knowledge base
  encode  - Show the prime-exponent encoding of an integer
  version - Show version information

Examples:
  primelogic demo                       # Run the built-in demonstration
  primelogic deduce socrates is mortal  # Query the demo knowledge base
  primelogic deduce --kb facts.toml socrates is mortal
  primelogic encode -- -360             # Encode a negative integer`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if err := logger.InitializeWithLevel(cfg.Log.JSON, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.DemoCmd)
	rootCmd.AddCommand(commands.DeduceCmd)
	rootCmd.AddCommand(commands.EncodeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
