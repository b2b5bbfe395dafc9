package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var showCmd = &cobra.Command{
	Use:   "show <trade>",
	Short: "Show one trade in org-mode format",
	Long: `Show the full record of one trade: entry snapshot, risk figures,
partial closes, screenshots, and the review.

The trade reference is a list index, a full ID, or an ID prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	_, _, book, in, err := openJournal()
	if err != nil {
		return err
	}

	t, err := book.Find(args[0])
	if err != nil {
		return err
	}

	fmt.Println(journal.FormatTradeOrg(t, in))

	if d, ok := journal.TimeInTrade(t); ok {
		fmt.Printf("Time in trade: %s\n", journal.FormatDuration(d))
	}
	return nil
}
