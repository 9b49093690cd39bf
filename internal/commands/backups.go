package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/deepwork/internal/store"
)

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List backups taken before categories were deleted",
	RunE: func(cmd *cobra.Command, args []string) error {
		backups, err := store.ListBackups(current.paths.BackupDir)
		if err != nil {
			return fmt.Errorf("failed to list backups: %w", err)
		}
		if len(backups) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No backups yet.")
			return nil
		}
		for _, b := range backups {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %8d bytes  %s\n",
				b.ModTime.Format("2006-01-02 15:04:05"), b.Size, b.Path)
		}
		return nil
	},
}
