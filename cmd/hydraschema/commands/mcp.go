package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/hydraschema/internal/mcpserver"
)

func newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run an MCP server over stdio",
		Long: `Run a Model Context Protocol server over stdin/stdout exposing the
build_schemas and check_value tools.

The server reads its settings from HYDRASCHEMA_* environment variables
(HYDRASCHEMA_PREFIX, HYDRASCHEMA_STRICT, HYDRASCHEMA_REDACT, HYDRASCHEMA_CACHE_*).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
