package mcptools

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// boolArg extracts an optional boolean argument.
func boolArg(req mcp.CallToolRequest, key string, fallback bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return fallback
	}
	return v
}

// splitList splits a comma-separated argument, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
