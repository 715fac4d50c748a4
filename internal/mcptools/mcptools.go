// Package mcptools exposes the synthesis pipeline as MCP tools served over stdio.
package mcptools

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/JaimeStill/drinkchain/internal/api"
)

// Tool is an MCP tool definition paired with its handler.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// NewServer registers every DrinkChain tool on a new MCP server.
func NewServer(domain *api.Domain, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"drinkchain",
		version,
		server.WithToolCapabilities(true),
	)

	for _, t := range Tools(domain) {
		s.AddTool(t.Definition(), t.Handle)
	}

	return s
}

// Tools returns the tool set bound to domain.
func Tools(domain *api.Domain) []Tool {
	return []Tool{
		NewDirectiveTool(domain.Strategies),
		NewTrendsTool(domain.Trends),
		NewSupplyTool(domain.Supply),
		NewChatTool(domain.Chat),
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
