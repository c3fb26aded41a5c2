// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server over one in-memory session.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/coach/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and holds one in-memory session:
everything logged through the tools accumulates until the server exits.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "coach": {
        "command": "coach",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  set_profile   Replace the user profile
  log_meal      Analyze and log a meal description
  log_workout   Analyze and log a workout description
  log_water     Log water intake
  get_status    Totals, targets, and progress
  get_advice    Coaching advice over today's log

AVAILABLE RESOURCES:

  coach://status   Dashboard figures
  coach://log      Everything logged this session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, cleanup := newSession()
		defer cleanup()

		server, err := mcp.NewServer(sess)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
