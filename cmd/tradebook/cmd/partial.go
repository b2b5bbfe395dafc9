package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var partialCmd = &cobra.Command{
	Use:   "partial <trade>",
	Short: "Record a partial close on an open trade",
	Long: `Record a partial close: a slice of the position closed before the
final outcome. Give the fill as a price or as pips from entry; the
other value is derived. Realized P/L is applied to the balance when
the trade is closed, not here.

Examples:
  tradebook partial 2 --lots 0.5 --pips 60 --reason "Reached Partial TP 1"
  tradebook partial 2 --lots 0.25 --price 2306.00 --reason "News Event Approaching"`,
	Args: cobra.ExactArgs(1),
	RunE: runPartial,
}

var partialFlags struct {
	lots   float64
	price  float64
	pips   float64
	reason string
}

func init() {
	rootCmd.AddCommand(partialCmd)

	f := partialCmd.Flags()
	f.Float64VarP(&partialFlags.lots, "lots", "l", 0, "lots to close (required)")
	f.Float64VarP(&partialFlags.price, "price", "p", 0, "fill price")
	f.Float64Var(&partialFlags.pips, "pips", 0, "pips from entry, profit positive")
	f.StringVarP(&partialFlags.reason, "reason", "r", "", "reason for the partial close (required)")

	partialCmd.MarkFlagRequired("lots")
	partialCmd.MarkFlagRequired("reason")
}

func runPartial(cmd *cobra.Command, args []string) error {
	_, store, book, in, err := openJournal()
	if err != nil {
		return err
	}

	t, err := book.Find(args[0])
	if err != nil {
		return err
	}
	if !t.IsOpen() {
		return fmt.Errorf("trade %s is already closed", shortRef(t.ID))
	}
	if cmd.Flags().Changed("price") && cmd.Flags().Changed("pips") {
		return fmt.Errorf("give either --price or --pips, not both")
	}

	pc, err := t.AddPartialClose(in, partialFlags.lots, partialFlags.price, partialFlags.pips,
		partialFlags.reason, time.Now())
	if err != nil {
		return err
	}

	if err := store.Save(book); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	fmt.Printf("Partial close on %s: %.2f lots @ %v (%.1f pips, $%.2f)\n",
		shortRef(t.ID), pc.Amount, pc.Price, pc.Pips, pc.PnL)
	fmt.Printf("  Remaining: %.2f lots\n", t.RemainingLots())
	return nil
}
