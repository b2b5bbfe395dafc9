package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Back up a corrupt journal file and start fresh",
	Long: `Check the journal file. If it cannot be parsed, rename it to a
timestamped .bak file and write a fresh empty journal at the starting
balance. A healthy journal is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runRecover,
}

func init() {
	rootCmd.AddCommand(recoverCmd)
}

func runRecover(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := journal.NewStore(cfg.Journal.File, cfg.Account.StartingBalance)
	book, err := store.Load()
	if err == nil {
		fmt.Printf("Journal %s is healthy: %d trades, balance %.2f\n",
			cfg.Journal.File, len(book.Trades), book.Balance)
		return nil
	}

	var ce *journal.CorruptError
	if !errors.As(err, &ce) {
		return fmt.Errorf("load journal: %w", err)
	}

	backup, err := store.BackupCorrupt()
	if err != nil {
		return fmt.Errorf("back up journal: %w", err)
	}
	fmt.Printf("Corrupt journal moved to %s\n", backup)

	book, err = store.Load()
	if err != nil {
		return fmt.Errorf("reload journal: %w", err)
	}
	if err := store.Save(book); err != nil {
		return fmt.Errorf("write fresh journal: %w", err)
	}

	fmt.Printf("Fresh journal written to %s (balance %.2f)\n", cfg.Journal.File, book.Balance)
	return nil
}
