// ABOUTME: CLI command for deleting movements.
// ABOUTME: Deletes by exact name; a missing name is reported, not an error.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/ctxlog"
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	deleteCmd := &cobra.Command{
		Use:     "del <noun>",
		Aliases: []string{"delete"},
		Short:   "Delete a record",
		Args:    cobra.ArbitraryArgs,
		RunE:    nounDispatch,
	}
	deleteCmd.AddCommand(newDeleteMoveCmd(a))
	return deleteCmd
}

func newDeleteMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "move <name>",
		Aliases: []string{"movement"},
		Short:   "Delete a movement by name",
		Long: `Removes a movement from the database using its exact name.

CAUTION:

  This permanently deletes the movement. There is no undo.`,
		Args: positional("name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]
			ctxlog.FromContext(ctx).Debug("del_movement", "name", name)

			repo, err := a.storage(ctx)
			if err != nil {
				return err
			}
			n, err := repo.DeleteMovement(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to delete movement: %w", err)
			}

			out := cmd.OutOrStdout()
			if n == 0 {
				fmt.Fprintf(out, "No movement named %s\n", name)
				return nil
			}
			color.New(color.FgYellow).Fprintf(out, "✗ Deleted %s\n", name)
			return nil
		},
	}
}
