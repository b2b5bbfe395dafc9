package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/risk"
)

var closeCmd = &cobra.Command{
	Use:   "close <trade>",
	Short: "Close a trade with its final review",
	Long: `Close a trade: record the outcome, exit price, and review notes,
and apply the total P/L to the account balance.

The close price defaults from the outcome: "Take Profit Hit" uses the
planned TP price, "Stoploss Hit" the SL price, "Breakeven" the entry
price. "Other" requires an explicit --price.

Examples:
  tradebook close 3 --outcome tp --notes "clean breakout"
  tradebook close 01J8ZK --outcome other --price 2304.20 --mdd-pips 35`,
	Args: cobra.ExactArgs(1),
	RunE: runClose,
}

var closeFlags struct {
	outcome  string
	price    float64
	notes    string
	exitTime string
	mddPips  float64
	mddPrice float64
	slToBE   bool
}

func init() {
	rootCmd.AddCommand(closeCmd)

	f := closeCmd.Flags()
	f.StringVarP(&closeFlags.outcome, "outcome", "o", "", "outcome: tp, sl, be, other (required)")
	f.Float64VarP(&closeFlags.price, "price", "p", 0, "close price (required for outcome 'other')")
	f.StringVarP(&closeFlags.notes, "notes", "n", "", "review notes")
	f.StringVar(&closeFlags.exitTime, "exit-time", "", "exit time HH:MM (default now)")
	f.Float64Var(&closeFlags.mddPips, "mdd-pips", 0, "max drawdown while open, in pips")
	f.Float64Var(&closeFlags.mddPrice, "mdd-price", 0, "worst price while open (alternative to --mdd-pips)")
	f.BoolVar(&closeFlags.slToBE, "sl-to-be", false, "stop loss was moved to break even")

	closeCmd.MarkFlagRequired("outcome")
}

// parseOutcome accepts the review labels and short aliases.
func parseOutcome(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tp", "take profit", "take profit hit":
		return journal.OutcomeTakeProfit, nil
	case "sl", "stoploss", "stop loss", "stoploss hit":
		return journal.OutcomeStopLoss, nil
	case "be", "breakeven", "break even":
		return journal.OutcomeBreakeven, nil
	case "other":
		return journal.OutcomeOther, nil
	}
	return "", fmt.Errorf("unknown outcome %q (want tp, sl, be, or other)", s)
}

func runClose(cmd *cobra.Command, args []string) error {
	_, store, book, in, err := openJournal()
	if err != nil {
		return err
	}

	t, err := book.Find(args[0])
	if err != nil {
		return err
	}

	outcome, err := parseOutcome(closeFlags.outcome)
	if err != nil {
		return err
	}

	price := closeFlags.price
	if !cmd.Flags().Changed("price") {
		switch outcome {
		case journal.OutcomeTakeProfit:
			price = t.Info.TPPrice
		case journal.OutcomeStopLoss:
			price = t.Info.SLPrice
		case journal.OutcomeBreakeven:
			price = t.Info.EntryPrice
		default:
			return fmt.Errorf("outcome 'other' needs an explicit --price")
		}
	}
	if price <= 0 {
		return fmt.Errorf("--price must be positive")
	}

	if cmd.Flags().Changed("mdd-pips") && cmd.Flags().Changed("mdd-price") {
		return fmt.Errorf("give either --mdd-pips or --mdd-price, not both")
	}
	mdd := closeFlags.mddPips
	if cmd.Flags().Changed("mdd-price") {
		mdd = in.DrawdownPips(t.Info.EntryPrice, closeFlags.mddPrice, t.Direction())
	}
	if mdd < 0 {
		return fmt.Errorf("--mdd-pips must not be negative")
	}

	exitTime := closeFlags.exitTime
	if exitTime == "" {
		exitTime = time.Now().Format("15:04")
	}

	rev := journal.Review{
		Outcome:         outcome,
		Price:           price,
		Notes:           closeFlags.notes,
		ExitTime:        exitTime,
		MaxDrawdownPips: mdd,
	}

	s, err := book.Close(t, in, rev, closeFlags.slToBE)
	if err != nil {
		return err
	}

	if err := store.Save(book); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	fmt.Printf("Closed trade %s: %s @ %v\n", shortRef(t.ID), outcome, price)
	fmt.Printf("  Result:    %s\n", s.Result)
	fmt.Printf("  Total P/L: $%.2f (%.1f pips) %s\n", s.TotalPnL, s.TotalPips,
		risk.FormatPct(s.TotalPnL, t.Info.AccountBalance))
	if s.DrawdownPips > 0 {
		fmt.Printf("  Max DD:    %.1f pips ($%.2f)\n", s.DrawdownPips, s.DrawdownUSD)
	}
	fmt.Printf("  Balance:   %.2f\n", book.Balance)
	return nil
}
