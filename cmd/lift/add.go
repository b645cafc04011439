// ABOUTME: CLI command for adding movements to the library.
// ABOUTME: Coerces the boolean tokens and lets the store assign the id.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/ctxlog"
	"github.com/harperreed/lift/internal/models"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add <noun>",
		Short: "Add a record",
		Long: `Add a record to the database. The only noun today is 'move'.

Examples:
  lift add move squat false true
  lift add move pullup yes no`,
		Args: cobra.ArbitraryArgs,
		RunE: nounDispatch,
	}
	addCmd.AddCommand(newAddMoveCmd(a))
	return addCmd
}

func newAddMoveCmd(a *app) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:     "move <name> <is_upper> <require_weight>",
		Aliases: []string{"movement"},
		Short:   "Add a movement",
		Long: `Add a movement to the database for future use.

is_upper and require_weight are true when the token is 1, true or yes
(any case, surrounding spaces ignored). Every other token is false.

Movement names are unique. The id is assigned by the database unless
--id is given.`,
		Args: positional("name", "is_upper", "require_weight"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m := models.NewMovement(args[0], models.ParseBool(args[1]), models.ParseBool(args[2]))
			if id != 0 {
				m.WithID(id)
			}
			ctxlog.FromContext(ctx).Debug("add_movement", "movement", m.String())

			repo, err := a.storage(ctx)
			if err != nil {
				return err
			}
			if err := repo.CreateMovement(ctx, m); err != nil {
				return fmt.Errorf("failed to add movement: %w", err)
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "✓ Added %s\n", m.Name)
			fmt.Fprintf(out, "  %s\n", color.New(color.Faint).Sprint(m.String()))
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "explicit movement id (default: next free id)")
	return cmd
}
