// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server over the configured movement store.
package main

import (
	"os/signal"
	"syscall"

	"github.com/harperreed/lift/internal/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and shares the movement library
used by the CLI.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "lift": { "command": "lift", "args": ["mcp"] }
    }
  }

AVAILABLE TOOLS:

  add_movement      Add a movement (is_upper/require_weight accept 1, true, yes)
  list_movements    List every movement
  get_movement      Get a movement by name
  delete_movement   Delete a movement by name

AVAILABLE RESOURCES:

  lift://movements  JSON export of the library`,
		Args: positional(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			repo, err := a.storage(ctx)
			if err != nil {
				return err
			}
			server, err := mcp.NewServer(repo)
			if err != nil {
				return err
			}

			if err := server.Serve(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
