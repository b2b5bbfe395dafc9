package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session <YYYY-MM-DD> <HH:MM> [timezone]",
	Short: "Classify a date and time into market sessions",
	Long: `Classify a local date/time into the open market sessions
(Sydney, Tokyo, London, New York), including overlaps.

The timezone defaults to UTC; an unknown timezone falls back to UTC.

Examples:
  tradebook session 2024-03-15 09:30
  tradebook session 2024-03-15 09:30 US/Eastern`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	tz := "UTC"
	if len(args) == 3 {
		tz = args[2]
	}
	fmt.Println(session.Classify(args[0], args[1], tz))
	return nil
}
