// ABOUTME: Root Cobra command for lift CLI.
// ABOUTME: Loads config, sets up logging, and owns the storage handle for one invocation.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/ctxlog"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

// app is the state shared by the commands of one invocation.
type app struct {
	cfg    *config.Config
	repo   storage.Repository
	logger *slog.Logger
}

// storage opens the configured backend on first use.
func (a *app) storage(ctx context.Context) (storage.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}
	if a.cfg == nil {
		a.cfg = &config.Config{}
	}
	repo, err := a.cfg.OpenStorage(ctx)
	if err != nil {
		return nil, err
	}
	a.repo = repo
	return repo, nil
}

func (a *app) close() error {
	if a.repo == nil {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lift",
		Short: "Track movements and lift data",
		Long: `Lift is a command line program for keeping track of different kinds
of movements and lift data.

Run 'lift help' for the full command reference.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			cfg, err := config.Load(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = ctxlog.New(cmd.ErrOrStderr(), cfg.Verbose)
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), a.logger))

			a.logger.Debug("dispatch", "command", cmd.CommandPath(), "args", args)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return printHelp(cmd.OutOrStdout())
		},
	}

	flags := root.PersistentFlags()
	flags.String("backend", "", "storage backend: sqlite or badger (default sqlite)")
	flags.String("data-dir", "", "data directory (default ~/.local/share/lift)")
	flags.String("db", "", "SQLite database file (default <data-dir>/lift_data.db)")
	flags.BoolP("verbose", "v", false, "log dispatcher diagnostics to stderr")

	root.SetHelpCommand(newHelpCmd())
	root.AddCommand(
		newAddCmd(a),
		newDeleteCmd(a),
		newMovementsCmd(a),
		newUndoCmd(),
		newExportCmd(a),
		newImportCmd(a),
		newMigrateCmd(a),
		newMCPCmd(a),
	)
	return root
}

// execute runs one lift invocation. The storage handle is closed even when
// the command fails.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}

	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	return errors.Join(err, a.close())
}
