// ABOUTME: CLI command placeholder for undo.
// ABOUTME: Recognised so the help text stays accurate; always fails.
package main

import (
	"github.com/spf13/cobra"
)

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last change (not implemented)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errUndoUnsupported
		},
	}
}
