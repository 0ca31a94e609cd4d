package cmd

import (
	"github.com/spf13/cobra"

	"langcolor/internal/linguist"
	"langcolor/internal/mcpserver"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve language color lookups as MCP tools over stdio",
		Long: `Runs an MCP (Model Context Protocol) server on stdin/stdout exposing
the language_color and nearest_xterm tools, so MCP clients can resolve
language colors without invoking the CLI per query.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := linguist.Load()
			if err != nil {
				return err
			}
			srv := mcpserver.NewServer(table, colorSpace, rootCmd.Version)
			return srv.ServeStdio()
		},
	}
}
