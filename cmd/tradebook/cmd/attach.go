package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var attachCmd = &cobra.Command{
	Use:   "attach <trade> <timeframe> <before|after> <path>",
	Short: "Attach a chart screenshot to a trade",
	Long: `Attach a screenshot path to one of the trade's chart slots.

Each trade has a before and an after slot per timeframe (D1, H4, H1).
Only the path is stored; the image file is never copied.

Example:
  tradebook attach 3 H1 before charts/xau_h1_entry.png`,
	Args: cobra.ExactArgs(4),
	RunE: runAttach,
}

func init() {
	rootCmd.AddCommand(attachCmd)
}

func runAttach(cmd *cobra.Command, args []string) error {
	_, store, book, _, err := openJournal()
	if err != nil {
		return err
	}

	t, err := book.Find(args[0])
	if err != nil {
		return err
	}

	if err := t.SetScreenshot(args[1], args[2], args[3]); err != nil {
		return err
	}

	if err := store.Save(book); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}

	fmt.Printf("Attached %s %s screenshot to %s\n", args[1], args[2], shortRef(t.ID))
	return nil
}
