package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/parser"
	"github.com/balkashynov/deepwork/internal/session"
	"github.com/balkashynov/deepwork/internal/stats"
)

var logCmd = &cobra.Command{
	Use:   "log [category]",
	Short: "Record work done away from the timer",
	Long: `Record a manual time entry. Anything not given on the command line is
asked for in a dialog.

Time formats for --at:
  2025-03-01T09:30:00, 2025-03-01 09:30, 2025-03-01 (noon), 01/03/2025 (noon),
  now, today, yesterday, "2 hours ago", "3 days ago"

Examples:
  deepwork log Writing --minutes 45
  deepwork log Reading --at yesterday --minutes 30
  deepwork log`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		atText, _ := cmd.Flags().GetString("at")
		minutesText, _ := cmd.Flags().GetString("minutes")
		ctrl := current.ctrl

		if len(args) == 0 && atText == "" && minutesText == "" {
			return ctrl.AddEntry()
		}

		now := time.Now()
		ts := now
		if atText != "" {
			var err error
			if ts, err = parser.ParseEntryTime(atText, now); err != nil {
				return err
			}
		}

		if minutesText == "" {
			text, err := current.dialogs.PromptText("Minutes", "How many minutes did you work?")
			if errors.Is(err, session.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			minutesText = text
		}
		minutes, err := parser.ParseMinutes(minutesText)
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			if current.store.Empty() {
				return session.ErrNoCategories
			}
			name, err = current.dialogs.SelectCategory(current.store.ListCategories())
			if errors.Is(err, session.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
		}

		if err := ctrl.AddManualEntry(name, ts, minutes); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged %s under '%s' at %s.\n",
			stats.FormatMinutes(models.RoundMinutes(minutes)), name, ts.Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	logCmd.Flags().String("at", "", "when the work happened (default now)")
	logCmd.Flags().String("minutes", "", "how long it took, in minutes")
}
