package main

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/drinkchain/internal/mcptools"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the pipeline as MCP tools over stdio",
	Long: `Starts an MCP server on stdin/stdout exposing strategy_directive,
market_trends, supply_listings and advisor_chat. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		s := mcptools.NewServer(a.domain, a.cfg.Version)
		return server.ServeStdio(s)
	}),
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
