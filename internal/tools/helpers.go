package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagnerlima/memory-cloud/linkedin-mcp/internal/apperror"
)

// Error text prefixes, one per apperror code.
const (
	invalidParamsPrefix = "invalid params"
	internalErrorPrefix = "internal error"
)

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// toolFailure reports err as a tool error prefixed with its classification.
func toolFailure(action string, err error) *mcp.CallToolResult {
	prefix := internalErrorPrefix
	if apperror.Code(err) == apperror.CodeInvalidParams {
		prefix = invalidParamsPrefix
	}
	return toolError("%s: %s: %s", prefix, action, apperror.Message(err))
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolFailure("marshal result", apperror.NewInternal("encode tool result", err)), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
