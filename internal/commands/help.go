package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for deepwork",
	Long:  `Display detailed help for all deepwork commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██████╗ ███████╗███████╗██████╗ ██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗
██╔══██╗██╔════╝██╔════╝██╔══██╗██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝
██║  ██║█████╗  █████╗  ██████╔╝██║ █╗ ██║██║   ██║██████╔╝█████╔╝
██║  ██║██╔══╝  ██╔══╝  ██╔═══╝ ██║███╗██║██║   ██║██╔══██╗██╔═██╗
██████╔╝███████╗███████╗██║     ╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗
╚═════╝ ╚══════╝╚══════╝╚═╝      ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝

deepwork - Deep Work Stopwatch + Timer

COMMANDS:

  deepwork                Open the interactive timer
    s / p / r             Start, pause, reset and save (see settings shortcuts)
    m                     Switch between stopwatch and timer (while stopped)
    n / x                 Add / delete a category
    e                     Add a manual entry
    t                     Set the timer length
    v                     Toggle statistics
    l                     Toggle start at login
    R                     Reload data from disk
    q                     Quit (unsaved time is discarded)

  category add [name]     Add a category
  category rm [name]      Delete a category (data is backed up first)
  category ls             List categories

  log [category]          Record a manual entry
    --at                  When: 2025-03-01 09:30, 01/03/2025, yesterday, "3 days ago"
    --minutes             How long, in minutes

  stats                   Today, last 7 days and lifetime totals
    --table               Render as a table

  settings                Show preferences
  settings login on|off   Start deepwork when you log in
  settings timer <min>    Countdown length (default 90)
  settings shortcuts s,p,r
                          Keys for start, pause and reset
  settings backend json|sqlite
                          Where categories are stored

  backups                 List backups
  version                 Print version information
  help                    Show this help

GLOBAL FLAGS:

  --dir                   App directory (also $DEEPWORK_DIR)
  --debug                 Use data_debug.json and verbose logging

`)
}
