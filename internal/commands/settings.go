package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/parser"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := current.settings.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Settings file:   %s\n", current.paths.SettingsFile)
		fmt.Fprintf(out, "Data:            %s\n", current.store.Location())
		fmt.Fprintf(out, "Backend:         %s\n", s.Backend)
		fmt.Fprintf(out, "Timer:           %d minutes\n", s.TimerMinutes)
		fmt.Fprintf(out, "Start at login:  %s\n", onOff(s.StartAtStartup))
		fmt.Fprintf(out, "Shortcuts:       start=%s pause=%s reset=%s\n", s.Shortcuts.Start, s.Shortcuts.Pause, s.Shortcuts.Reset)
		return nil
	},
}

var settingsLoginCmd = &cobra.Command{
	Use:       "login on|off",
	Short:     "Start deepwork when you log in",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[0] {
		case "on":
			enabled = true
		case "off":
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}
		if err := current.ctrl.SetStartAtLogin(enabled); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Start at login %s.\n", onOff(enabled))
		return nil
	},
}

var settingsTimerCmd = &cobra.Command{
	Use:   "timer <minutes>",
	Short: "Set the countdown length",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := parser.ParseTimerMinutes(args[0])
		if err != nil {
			return err
		}
		if err := current.ctrl.SetTimerMinutes(minutes); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Timer set to %d minutes.\n", minutes)
		return nil
	},
}

var settingsShortcutsCmd = &cobra.Command{
	Use:   "shortcuts <start,pause,reset>",
	Short: "Set the keys for start, pause and reset",
	Long: `Set the keys for start, pause and reset in the interactive timer.

Example:
  deepwork settings shortcuts s,p,r`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := parser.ParseShortcuts(args[0])
		if err != nil {
			return err
		}
		if err := current.settings.Update(func(s *models.Settings) { s.Shortcuts = sc }); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Shortcuts: start=%s pause=%s reset=%s\n", sc.Start, sc.Pause, sc.Reset)
		return nil
	},
}

var settingsBackendCmd = &cobra.Command{
	Use:       "backend json|sqlite",
	Short:     "Choose where categories are stored",
	Long:      `Choose where categories are stored. Existing data is not migrated.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{models.BackendJSON, models.BackendSQLite},
	RunE: func(cmd *cobra.Command, args []string) error {
		backend := args[0]
		if backend != models.BackendJSON && backend != models.BackendSQLite {
			return fmt.Errorf("unknown backend %q (use %s or %s)", backend, models.BackendJSON, models.BackendSQLite)
		}
		if err := current.settings.Update(func(s *models.Settings) { s.Backend = backend }); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Backend set to %s, used from the next run.\n", backend)
		return nil
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	settingsCmd.AddCommand(settingsLoginCmd)
	settingsCmd.AddCommand(settingsTimerCmd)
	settingsCmd.AddCommand(settingsShortcutsCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
}
