package main

import (
	"github.com/spf13/cobra"
	"github.com/wa-agent/wa/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Expose workspace management as MCP tools and resources over
standard input and output, for use by MCP clients.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	return mcpserver.Serve(workspacesRoot())
}
