package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/JaimeStill/drinkchain/internal/supply"
)

// SupplyTool handles the supply_listings MCP tool.
type SupplyTool struct {
	sys supply.System
}

// NewSupplyTool creates a SupplyTool.
func NewSupplyTool(sys supply.System) *SupplyTool {
	return &SupplyTool{sys: sys}
}

// Definition returns the MCP tool definition for supply_listings.
func (t *SupplyTool) Definition() mcp.Tool {
	return mcp.NewTool("supply_listings",
		mcp.WithDescription(
			"List unexpired supply and demand listings. By default a fresh batch is "+
				"synthesized for the category under the active strategy lens first.",
		),
		mcp.WithString("category",
			mcp.Description("Product category (default: general)"),
		),
		mcp.WithString("type",
			mcp.Description("Filter: ALL (default), SUPPLY or DEMAND"),
		),
		mcp.WithBoolean("refresh",
			mcp.Description("Synthesize a new batch before listing (default: true)"),
		),
	)
}

// Handle processes the supply_listings tool call.
func (t *SupplyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := supply.ParseTypeFilter(req.GetString("type", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if boolArg(req, "refresh", true) {
		t.sys.Refresh(ctx, req.GetString("category", ""))
	}

	return jsonResult(t.sys.List(filter))
}
