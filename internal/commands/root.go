package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/deepwork/internal/config"
	"github.com/balkashynov/deepwork/internal/db"
	"github.com/balkashynov/deepwork/internal/logger"
	"github.com/balkashynov/deepwork/internal/login"
	"github.com/balkashynov/deepwork/internal/models"
	"github.com/balkashynov/deepwork/internal/session"
	"github.com/balkashynov/deepwork/internal/store"
	"github.com/balkashynov/deepwork/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	dirFlag   string
	debugFlag bool
)

// app holds everything a command needs, built once before it runs
type app struct {
	paths    config.Paths
	settings *store.SettingsStore
	store    *store.CategoryStore
	dialogs  *tui.Dialogs
	login    *login.Autostart
	ctrl     *session.Controller
	closeDB  func() error
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "deepwork",
	Short: "A deep work stopwatch and timer",
	Long: `deepwork tracks focused work time against your own categories.

Run it without arguments for the interactive timer. Time is saved when you
reset the stopwatch or when the timer runs out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		// the bare command runs the full-screen timer
		a, err := setup(!cmd.HasParent())
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current != nil && current.closeDB != nil {
			return current.closeDB()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTimerTUI(current.ctrl, current.dialogs, current.settings.Get().Shortcuts)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "deepwork %s (commit %s, built %s)\n", version, commit, date)
	},
}

// setup resolves paths, starts logging and opens the stores.
func setup(interactive bool) (*app, error) {
	dir := dirFlag
	if dir == "" {
		var err error
		if dir, err = config.DefaultDir(); err != nil {
			return nil, err
		}
	}
	paths := config.Resolve(dir, debugFlag)
	if err := paths.Ensure(); err != nil {
		return nil, err
	}

	logCfg := logger.Config{Debug: debugFlag, LogDir: paths.LogDir}
	if !interactive {
		logCfg.Console = os.Stderr
	}
	if err := logger.Init(logCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	settings, err := store.OpenSettings(paths.SettingsFile)
	if err != nil {
		return nil, err
	}

	a := &app{
		paths:    paths,
		settings: settings,
		dialogs:  tui.NewDialogs(os.Stdout, os.Stderr),
	}

	var backend store.Backend
	switch settings.Get().Backend {
	case models.BackendSQLite:
		sqlite, err := db.Open(paths.SQLiteFile, paths.BackupDir)
		if err != nil {
			return nil, err
		}
		backend = sqlite
		a.closeDB = sqlite.Close
	default:
		backend = store.NewJSONBackend(paths.DataFile, paths.BackupDir)
	}

	if a.store, err = store.Open(backend); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", backend.Location(), err)
	}

	opts := session.Options{
		Store:    a.store,
		UI:       a.dialogs,
		Settings: settings,
	}
	if a.login, err = login.New(); err != nil {
		logger.Warn("login items unavailable", "error", err)
	} else {
		opts.Login = a.login
	}
	a.ctrl = session.New(opts)
	if err := a.ctrl.SyncStartAtLogin(); err != nil {
		logger.Warn("could not sync start at login", "error", err)
	}

	logger.Debug("ready", "dir", paths.Dir, "store", a.store.Location())
	return a, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "app directory (default $"+config.DirEnv+" or the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "use debug data file and verbose logging")

	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
