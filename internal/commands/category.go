package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a category",
	Long: `Add a category. Without a name a dialog asks for one.

Examples:
  deepwork category add Writing
  deepwork category add "Deep reading"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return current.ctrl.AddCategory()
		}
		name := strings.TrimSpace(args[0])
		if err := current.store.AddCategory(name); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Category '%s' added.\n", name)
		return nil
	},
}

var categoryRmCmd = &cobra.Command{
	Use:     "rm [name]",
	Aliases: []string{"delete"},
	Short:   "Delete a category and all its entries",
	Long: `Delete a category and all its entries. The data is backed up first.
Without a name a dialog lists the categories.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return current.ctrl.DeleteCategory()
		}
		name := args[0]
		if !current.store.Has(name) {
			fmt.Fprintf(cmd.OutOrStdout(), "Category '%s' does not exist, nothing to delete.\n", name)
			return nil
		}
		backup, err := current.store.DeleteCategory(name)
		if err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Category '%s' deleted. Backup: %s\n", name, backup)
		return nil
	},
}

var categoryLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List categories in the order they were added",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := current.store.ListCategories()
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No categories yet. Add one with: deepwork category add <name>")
			return nil
		}
		for _, name := range names {
			entries, _ := current.store.Entries(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-30s %d entries\n", name, len(entries))
		}
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	categoryCmd.AddCommand(categoryLsCmd)
}
