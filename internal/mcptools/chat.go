package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/JaimeStill/drinkchain/internal/chat"
)

// ChatTool handles the advisor_chat MCP tool.
type ChatTool struct {
	sys chat.System
}

// ChatReply pairs a reply with the session that produced it.
type ChatReply struct {
	SessionID string       `json:"sessionId"`
	Reply     chat.Message `json:"reply"`
}

// NewChatTool creates a ChatTool.
func NewChatTool(sys chat.System) *ChatTool {
	return &ChatTool{sys: sys}
}

// Definition returns the MCP tool definition for advisor_chat.
func (t *ChatTool) Definition() mcp.Tool {
	return mcp.NewTool("advisor_chat",
		mcp.WithDescription(
			"Ask the beverage supply-chain advisor a question. Omit session_id to start a "+
				"new conversation; pass the returned sessionId to continue it.",
		),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("Question for the advisor"),
		),
		mcp.WithString("session_id",
			mcp.Description("Existing conversation id"),
		),
	)
}

// Handle processes the advisor_chat tool call.
func (t *ChatTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message := req.GetString("message", "")
	if message == "" {
		return mcp.NewToolResultError("'message' is required"), nil
	}

	id := req.GetString("session_id", "")
	if id == "" {
		id = t.sys.Open().ID
	}

	reply, err := t.sys.Send(ctx, id, message)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(ChatReply{SessionID: id, Reply: reply})
}
