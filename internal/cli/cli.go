// Package cli dispatches docindex subcommands.
package cli

import (
	"fmt"

	"docindex/internal/cli/commands"
)

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	if len(args) == 0 {
		return commands.ShowUsage()
	}

	switch args[0] {
	case "version", "--version", "-v":
		return cmdVersion()
	case "help", "-h", "--help":
		return commands.RunHelp(args[1:])
	}

	cmd, ok := commands.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown command: %s\nRun 'docindex help' for usage", args[0])
	}
	return cmd.Run(args[1:])
}
