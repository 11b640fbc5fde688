package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fffdata/mcpserver"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve FFF lookups as MCP tools over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the tools
fff_get_match, fff_get_club, fff_get_endpoint and fff_list_endpoints.
Logs go to stderr and, when configured, to the log file.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	server, err := mcpserver.NewServer(fffClient, logger, appVersion)
	if err != nil {
		return err
	}

	if err := server.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
