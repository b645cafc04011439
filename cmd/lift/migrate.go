// ABOUTME: CLI command for copying the movement library between backends.
// ABOUTME: Optionally switches the saved config to the destination.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/storage"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	var (
		to    string
		toDir string
		force bool
		swap  bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy movements to another storage backend",
		Long: `Copy every movement from the current backend to another one.

Ids are preserved. The destination must not hold data unless --force is
given, in which case a conflicting id or name stops the migration.

EXAMPLES:

  lift migrate --to badger --to-dir ~/lift-badger
  lift migrate --to sqlite --to-dir ~/lift-sqlite --switch`,
		Args: positional(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if toDir == "" {
				return fmt.Errorf("%w --to-dir", errMissingArgument)
			}

			dst := &config.Config{Backend: to, DataDir: toDir}
			if err := dst.Validate(); err != nil {
				return err
			}
			if sameLocation(a.cfg, dst) {
				return errors.New("source and destination are the same")
			}

			if !force {
				inUse, err := destinationInUse(dst)
				if err != nil {
					return err
				}
				if inUse {
					return fmt.Errorf("destination %s already has data (use --force to merge)", dst.GetDataDir())
				}
			}

			src, err := a.storage(ctx)
			if err != nil {
				return err
			}
			dstRepo, err := dst.OpenStorage(ctx)
			if err != nil {
				return fmt.Errorf("open destination: %w", err)
			}
			defer dstRepo.Close()

			summary, err := storage.MigrateData(ctx, src, dstRepo)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			out := cmd.OutOrStdout()
			color.New(color.FgGreen).Fprintf(out, "✓ Migrated %d movements to %s (%s)\n",
				summary.Movements, dst.GetDataDir(), dst.GetBackend())

			if swap {
				if err := dst.Save(); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Fprintf(out, "  config now uses %s at %s\n", dst.GetBackend(), config.GetConfigPath())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", config.BackendSQLite, "destination backend: sqlite or badger")
	cmd.Flags().StringVar(&toDir, "to-dir", "", "destination data directory")
	cmd.Flags().BoolVar(&force, "force", false, "migrate into a destination that already has data")
	cmd.Flags().BoolVar(&swap, "switch", false, "save the destination as the configured backend")
	return cmd
}

func sameLocation(src, dst *config.Config) bool {
	if src.GetBackend() != dst.GetBackend() {
		return false
	}
	if src.GetBackend() == config.BackendBadger {
		return src.GetBadgerDir() == dst.GetBadgerDir()
	}
	return src.GetDBPath() == dst.GetDBPath()
}

func destinationInUse(dst *config.Config) (bool, error) {
	if dst.GetBackend() == config.BackendBadger {
		return storage.IsDirNonEmpty(dst.GetBadgerDir())
	}
	_, err := os.Stat(dst.GetDBPath())
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
