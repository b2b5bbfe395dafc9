package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/playbook"
)

var playbookCmd = &cobra.Command{
	Use:   "playbook",
	Short: "Manage the playbook option lists",
	Long: `Manage the label lists offered when logging and closing trades.

Categories: setups, entries, sl_reasons, tp_reasons, close_reasons.
Each category lives in its own JSON file under the playbook directory.

Examples:
  tradebook playbook list setups
  tradebook playbook add setups "Liquidity Sweep"
  tradebook playbook edit entries Retest "Retest Entry"
  tradebook playbook delete tp_reasons "Previous High"`,
}

var playbookListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List playbook entries (all categories when none is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlaybookList,
}

var playbookAddCmd = &cobra.Command{
	Use:   "add <category> <item>",
	Short: "Add an entry to a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlaybookAdd,
}

var playbookEditCmd = &cobra.Command{
	Use:   "edit <category> <old> <new>",
	Short: "Rename an entry in a category",
	Args:  cobra.ExactArgs(3),
	RunE:  runPlaybookEdit,
}

var playbookDeleteCmd = &cobra.Command{
	Use:   "delete <category> <item>",
	Short: "Delete an entry from a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlaybookDelete,
}

func init() {
	rootCmd.AddCommand(playbookCmd)
	playbookCmd.AddCommand(playbookListCmd)
	playbookCmd.AddCommand(playbookAddCmd)
	playbookCmd.AddCommand(playbookEditCmd)
	playbookCmd.AddCommand(playbookDeleteCmd)
}

func printCategory(s *playbook.Store, c playbook.Category) error {
	items, reset, err := s.LoadOrCreate(c)
	if err != nil {
		return err
	}
	if reset {
		fmt.Printf("note: %s file was unreadable and has been reset to the defaults\n", c)
	}
	fmt.Printf("%s:\n", c)
	for _, it := range items {
		fmt.Printf("  %s\n", it)
	}
	return nil
}

func runPlaybookList(cmd *cobra.Command, args []string) error {
	s, err := openPlaybook()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		c, err := playbook.ParseCategory(args[0])
		if err != nil {
			return err
		}
		return printCategory(s, c)
	}
	for _, c := range playbook.Categories {
		if err := printCategory(s, c); err != nil {
			return err
		}
	}
	return nil
}

func runPlaybookAdd(cmd *cobra.Command, args []string) error {
	s, err := openPlaybook()
	if err != nil {
		return err
	}
	c, err := playbook.ParseCategory(args[0])
	if err != nil {
		return err
	}
	if err := s.Add(c, args[1]); err != nil {
		return err
	}
	fmt.Printf("Added %q to %s\n", args[1], c)
	return nil
}

func runPlaybookEdit(cmd *cobra.Command, args []string) error {
	s, err := openPlaybook()
	if err != nil {
		return err
	}
	c, err := playbook.ParseCategory(args[0])
	if err != nil {
		return err
	}
	if err := s.Edit(c, args[1], args[2]); err != nil {
		return err
	}
	fmt.Printf("Renamed %q to %q in %s\n", args[1], args[2], c)
	return nil
}

func runPlaybookDelete(cmd *cobra.Command, args []string) error {
	s, err := openPlaybook()
	if err != nil {
		return err
	}
	c, err := playbook.ParseCategory(args[0])
	if err != nil {
		return err
	}
	if err := s.Delete(c, args[1]); err != nil {
		return err
	}
	fmt.Printf("Deleted %q from %s\n", args[1], c)
	return nil
}
