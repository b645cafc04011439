// ABOUTME: CLI command for listing the movement library.
// ABOUTME: Prints one debug-style line per stored movement.
package main

import (
	"fmt"

	"github.com/harperreed/lift/internal/ctxlog"
	"github.com/spf13/cobra"
)

func newMovementsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "movements",
		Aliases: []string{"ls", "list"},
		Short:   "Show all movements",
		Args:    positional(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctxlog.FromContext(ctx).Debug("show_all_movements")

			repo, err := a.storage(ctx)
			if err != nil {
				return err
			}
			movements, err := repo.ListMovements(ctx)
			if err != nil {
				return fmt.Errorf("failed to list movements: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(movements) == 0 {
				fmt.Fprintln(out, "No movements found.")
				return nil
			}
			for _, m := range movements {
				fmt.Fprintln(out, m.String())
			}
			return nil
		},
	}
}
