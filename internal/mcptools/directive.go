package mcptools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/JaimeStill/drinkchain/internal/prompts"
	"github.com/JaimeStill/drinkchain/internal/strategies"
)

// DirectiveTool handles the strategy_directive MCP tool.
type DirectiveTool struct {
	sys strategies.System
}

// NewDirectiveTool creates a DirectiveTool.
func NewDirectiveTool(sys strategies.System) *DirectiveTool {
	return &DirectiveTool{sys: sys}
}

// Definition returns the MCP tool definition for strategy_directive.
func (t *DirectiveTool) Definition() mcp.Tool {
	return mcp.NewTool("strategy_directive",
		mcp.WithDescription(
			"Show the active strategy lens and its directive. Passing type, id, context or "+
				"factors first selects a new lens.",
		),
		mcp.WithString("type",
			mcp.Description("Strategy: DEFAULT, COST, UNIQUE, QUALITY or CUSTOM"),
		),
		mcp.WithString("id",
			mcp.Description("Saved custom strategy id"),
		),
		mcp.WithString("context",
			mcp.Description("Ephemeral custom context, used with type CUSTOM"),
		),
		mcp.WithString("factors",
			mcp.Description("Comma-separated prioritized factors (at most three), used with type CUSTOM when context is empty"),
		),
	)
}

// Handle processes the strategy_directive tool call.
func (t *DirectiveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typ := req.GetString("type", "")
	id := req.GetString("id", "")
	custom := req.GetString("context", "")
	factors := splitList(req.GetString("factors", ""))

	if typ == "" && id == "" && custom == "" && len(factors) == 0 {
		return jsonResult(t.sys.Active())
	}

	cmd := strategies.SelectCommand{
		ID:      id,
		Context: custom,
		Factors: factors,
	}
	if typ != "" {
		s, err := prompts.ParseStrategy(typ)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%v: %q", err, typ)), nil
		}
		cmd.Type = s
	}

	return jsonResult(t.sys.Select(cmd))
}
