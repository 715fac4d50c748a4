package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/JaimeStill/drinkchain/internal/trends"
)

// TrendsTool handles the market_trends MCP tool.
type TrendsTool struct {
	sys trends.System
}

// NewTrendsTool creates a TrendsTool.
func NewTrendsTool(sys trends.System) *TrendsTool {
	return &TrendsTool{sys: sys}
}

// Definition returns the MCP tool definition for market_trends.
func (t *TrendsTool) Definition() mcp.Tool {
	return mcp.NewTool("market_trends",
		mcp.WithDescription(
			"Synthesize a beverage market trend analysis under the active strategy lens. "+
				"Returns a recovery analysis when the backend is unavailable.",
		),
	)
}

// Handle processes the market_trends tool call.
func (t *TrendsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.sys.Refresh(ctx))
}
