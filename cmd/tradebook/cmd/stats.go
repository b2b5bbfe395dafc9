package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over the journal",
	Long: `Show win rate, total P/L, and average RR over the journal,
optionally narrowed by filters.

The session filter matches by substring, so --session London also
catches overlap labels like "London+New York".

Examples:
  tradebook stats
  tradebook stats --setup Breakout --session London`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var statsFilter journal.Filter

func init() {
	rootCmd.AddCommand(statsCmd)

	f := statsCmd.Flags()
	f.StringVar(&statsFilter.Symbol, "symbol", "", "filter by instrument symbol")
	f.StringVar(&statsFilter.Setup, "setup", "", "filter by setup label")
	f.StringVar(&statsFilter.EntryStyle, "entry-style", "", "filter by entry style")
	f.StringVar(&statsFilter.Session, "session", "", "filter by market session (substring)")
	f.StringVar(&statsFilter.Outcome, "outcome", "", "filter by review outcome")
	f.StringVar(&statsFilter.Result, "result", "", "filter by result (Open, Win, Loss, Breakeven)")
}

func runStats(cmd *cobra.Command, args []string) error {
	_, _, book, in, err := openJournal()
	if err != nil {
		return err
	}

	trades := journal.Apply(book.Trades, statsFilter, in)
	st := journal.Compute(trades, in)

	fmt.Printf("Trades:    %d (of %d)\n", st.Total, len(book.Trades))
	fmt.Printf("Wins:      %d\n", st.Wins)
	fmt.Printf("Losses:    %d\n", st.Losses)
	fmt.Printf("Win rate:  %d%%\n", st.WinRate)
	fmt.Printf("Total P/L: $%.2f\n", st.TotalPnL)
	fmt.Printf("Avg RR:    %.2f\n", st.AvgRR)
	return nil
}
