package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/market"
	"github.com/rustyeddy/tradebook/playbook"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A personal trading journal for discretionary FX and metals trades",
	Long: `Tradebook is a command-line trading journal written in Go.

It provides tools for:
  - Logging trades with pip-based SL/TP levels and risk figures
  - Recording partial closes and the final review of each trade
  - Classifying entries by market session (Sydney/Tokyo/London/New York)
  - Tracking the account balance from realized P/L
  - Per-setup statistics with win rate and average RR
  - Exporting the journal to CSV or SQLite

Complete documentation is available at https://github.com/rustyeddy/tradebook`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var cfgPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "tradebook.yaml", "config file (YAML or JSON)")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openJournal loads the config, the instrument, and the journal file.
// A corrupt journal aborts with a pointer to the recover command.
func openJournal() (*config.Config, *journal.Store, *journal.Book, market.Instrument, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, market.Instrument{}, err
	}

	in, err := cfg.MarketInstrument()
	if err != nil {
		return nil, nil, nil, market.Instrument{}, err
	}

	store := journal.NewStore(cfg.Journal.File, cfg.Account.StartingBalance)
	book, err := store.Load()
	if err != nil {
		var ce *journal.CorruptError
		if errors.As(err, &ce) {
			return nil, nil, nil, market.Instrument{}, fmt.Errorf(
				"journal file %s is corrupt; run 'tradebook recover' to back it up and start fresh: %w",
				ce.Path, ce.Err)
		}
		return nil, nil, nil, market.Instrument{}, fmt.Errorf("load journal: %w", err)
	}

	return cfg, store, book, in, nil
}

func openPlaybook() (*playbook.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return playbook.NewStore(cfg.Journal.PlaybookDir), nil
}
