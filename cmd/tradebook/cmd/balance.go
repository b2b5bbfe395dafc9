package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show or set the account balance",
	Long: `Show the running account balance.

The balance starts at the configured starting balance and moves by the
total P/L of each closed trade. 'balance set' is the manual override
for corrections and deposits/withdrawals.`,
	Args: cobra.NoArgs,
	RunE: runBalance,
}

var balanceSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the account balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runBalanceSet,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.AddCommand(balanceSetCmd)
}

func runBalance(cmd *cobra.Command, args []string) error {
	cfg, _, book, _, err := openJournal()
	if err != nil {
		return err
	}
	fmt.Printf("%.2f %s\n", book.Balance, cfg.Account.Currency)
	return nil
}

func runBalanceSet(cmd *cobra.Command, args []string) error {
	_, store, book, _, err := openJournal()
	if err != nil {
		return err
	}

	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[0])
	}
	if v < 0 {
		return fmt.Errorf("balance must not be negative")
	}

	book.SetBalance(v)
	if err := store.Save(book); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	fmt.Printf("Balance set to %.2f\n", v)
	return nil
}
