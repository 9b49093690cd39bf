package main

import (
	"fmt"
	"os"

	"github.com/balkashynov/deepwork/internal/commands"
	"github.com/balkashynov/deepwork/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersion(version, commit, date)
	if err := commands.Execute(); err != nil {
		if !session.IsAlerted(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
