// ABOUTME: Argument validation errors shared by every lift command.
// ABOUTME: Positional validators name the first missing argument.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	errMissingArgument  = errors.New("missing argument")
	errTooManyArguments = errors.New("too many arguments")
	errUnknownNoun      = errors.New("unknown noun")
	errUndoUnsupported  = errors.New("undo is not implemented")
)

// positional accepts exactly the named arguments, in order.
func positional(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return missingArgument(cmd, names[len(args)])
		}
		if len(args) > len(names) {
			return fmt.Errorf("%w: want %d, got %d\nUsage: %s",
				errTooManyArguments, len(names), len(args), cmd.UseLine())
		}
		return nil
	}
}

func missingArgument(cmd *cobra.Command, name string) error {
	return fmt.Errorf("%w <%s>\nUsage: %s", errMissingArgument, name, cmd.UseLine())
}

// nounDispatch is the RunE of a verb whose work lives in noun subcommands.
// It only runs when no known noun matched.
func nounDispatch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return missingArgument(cmd, "noun")
	}
	return fmt.Errorf("%w %q for %q", errUnknownNoun, args[0], cmd.CommandPath())
}
