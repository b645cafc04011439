// ABOUTME: Static help text for lift CLI.
// ABOUTME: Replaces Cobra's generated help command; extra arguments are ignored.
package main

import (
	"fmt"
	"io"

	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

const (
	programName = "LIFT_CLI"
	author      = "Jake Goodwin"
)

const helpBody = `
Description:
  Lift is a command line interface program for keeping track of different
  kinds of movements and lift data.

OPTIONS:

  add: usage --> lift add move <name> <is_upper true/false> <require_weight true/false>
      Adds a movement to the database for future use.

  movements: usage --> lift movements
      Shows all the movements in the database.

  del: usage --> lift del move <name>
      Removes a movement from the database using its name.

  undo: usage --> lift undo
      Reverts the database back before the last run command (not implemented yet).

  help: usage --> lift help
      Shows this text.

MORE:

  export <json|yaml|markdown> [-o file]    Export the movement library
  import <file>                            Import a JSON export
  migrate --to <backend> --to-dir <dir>    Copy movements to another backend
  mcp                                      Start the MCP server on stdio

  Global flags: --backend, --data-dir, --db, --verbose/-v
  Config file:  ~/.config/lift/config.yaml (overridden by LIFT_* env vars)
`

func printHelp(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Program Name: %s\nDataBase File: %s\nAuthor: %s\n%s",
		programName, storage.DefaultDBName, author, helpBody)
	return err
}

func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [anything]",
		Short: "Show the lift help text",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printHelp(cmd.OutOrStdout())
		},
	}
}
