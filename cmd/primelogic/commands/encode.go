package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tessark/primelogic/codec"
	"github.com/tessark/primelogic/config"
	"github.com/tessark/primelogic/errors"
	"github.com/tessark/primelogic/prime"
	"github.com/tessark/primelogic/sym"
)

// EncodeCmd shows the prime-exponent encoding of an integer.
var EncodeCmd = &cobra.Command{
	Use:   "encode <integer>",
	Short: "Show the prime-exponent encoding of an integer",
	Long: `Factor an integer into the prime-exponent domain and print the
resulting exponent vector, then decode it back to verify the round trip.

Zero has no prime factorization and is rejected. Negative integers are
carried by the reserved sign marker. Use "--" before a negative argument
so it is not parsed as a flag.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncodeCommand,
}

func runEncodeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(err, "not an integer: %s", args[0])
	}

	c := codec.NewWithSieve(prime.NewSieve(cfg.Prime.InitialSieveLimit))
	enc, err := c.EncodeInt(n)
	if err != nil {
		if errors.IsInvalidEncoding(err) {
			pterm.Error.Printf("Cannot encode %d: %v", n, err)
			return err
		}
		return err
	}

	pterm.Info.Printf("%d %s %s", n, sym.Tensor, enc.String())
	pterm.Println()

	rows := pterm.TableData{{"Prime", "Exponent"}}
	for _, p := range enc.Primes() {
		rows = append(rows, []string{strconv.Itoa(p), strconv.Itoa(enc[p])})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	decoded := c.DecodeInt(enc)
	if decoded != n {
		return fmt.Errorf("round trip mismatch: encoded %d, decoded %d", n, decoded)
	}
	pterm.Success.Printf("Round trip verified: %d", decoded)
	return nil
}
