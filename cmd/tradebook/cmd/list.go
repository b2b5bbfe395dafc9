package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal trades",
	Long: `List all trades in the journal, oldest first.

The leading index and the short ID are both accepted wherever a command
takes a trade reference.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listOpenOnly bool

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listOpenOnly, "open", false, "show only open trades")
}

func runList(cmd *cobra.Command, args []string) error {
	_, _, book, in, err := openJournal()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tDATE\tDIR\tSYMBOL\tENTRY\tLOTS\tSESSION\tRESULT\tPNL")
	shown := 0
	for i, t := range book.Trades {
		if listOpenOnly && !t.IsOpen() {
			continue
		}
		s := journal.Summarize(t, in)
		pnl := "-"
		if !t.IsOpen() {
			pnl = fmt.Sprintf("%.2f", s.TotalPnL)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%v\t%v\t%s\t%s\t%s\n",
			i+1, shortRef(t.ID), t.Info.TradeDate, t.Info.TradeType, t.Symbol,
			t.Info.EntryPrice, t.Info.LotSize, t.Info.MarketSession, s.Result, pnl)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d trades, balance %.2f\n", shown, book.Balance)
	return nil
}

func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
