package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export <csv|sqlite>",
	Short: "Export the journal to CSV or SQLite",
	Long: `Export all trades with their derived figures.

CSV writes one summarized row per trade. SQLite writes the trades and
their partial closes into relational tables; re-exporting into the
same database replaces existing rows.

Examples:
  tradebook export csv --out trades.csv
  tradebook export sqlite --out trades.sqlite`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default derived from the journal file)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, _, book, in, err := openJournal()
	if err != nil {
		return err
	}

	out := exportOut
	switch args[0] {
	case "csv":
		if out == "" {
			out = cfg.Journal.File + ".csv"
		}
		if err := journal.ExportCSV(out, book.Trades, in); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	case "sqlite":
		if out == "" {
			out = cfg.Journal.File + ".sqlite"
		}
		if err := journal.ExportSQLite(out, book.Trades, in); err != nil {
			return fmt.Errorf("export sqlite: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q (want csv or sqlite)", args[0])
	}

	fmt.Printf("Exported %d trades to %s\n", len(book.Trades), out)
	return nil
}
