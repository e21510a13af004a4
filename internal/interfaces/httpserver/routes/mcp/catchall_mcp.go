package mcp

import (
	"context"
	"encoding/json"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/newscatcher/catchall-mcp/internal/domain/catchall"
	"github.com/newscatcher/catchall-mcp/internal/infrastructure/metrics"
	mcputil "github.com/newscatcher/catchall-mcp/internal/utils/mcp"
	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

// apiKeyArg is appended to every tool so callers can override the connection
// and environment credentials per call.
var apiKeyArg = catchall.ArgSpec{
	Name:        "api_key",
	Type:        catchall.ArgString,
	Description: "Newscatcher API key. Takes precedence over the connection URL and environment credentials.",
}

// CatchAllMCP registers one MCP tool per template and forwards invocations
// to the gateway service.
type CatchAllMCP struct {
	service   *catchall.Service
	templates []catchall.ToolTemplate
}

// NewCatchAllMCP creates the CatchAll MCP handler.
func NewCatchAllMCP(service *catchall.Service, templates []catchall.ToolTemplate) *CatchAllMCP {
	return &CatchAllMCP{
		service:   service,
		templates: templates,
	}
}

// RegisterTools registers every CatchAll tool with the MCP server.
func (m *CatchAllMCP) RegisterTools(server *mcpserver.MCPServer) {
	for _, tmpl := range m.templates {
		args := append(append([]catchall.ArgSpec{}, tmpl.Args...), apiKeyArg)
		server.AddTool(
			mcpgo.NewTool(tmpl.Name, mcputil.TemplateToMCPOptions(tmpl.Description, args)...),
			m.toolHandler(tmpl),
		)
	}
	log.Info().Int("tools", len(m.templates)).Msg("CatchAll tools registered")
}

// toolHandler builds the handler for one template. Failures come back as
// error-flagged text results with a descriptive message; protocol-level
// errors are never returned to the caller.
func (m *CatchAllMCP) toolHandler(tmpl catchall.ToolTemplate) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		start := time.Now()

		result, err := m.service.Call(ctx, tmpl, req.GetArguments())
		if err != nil {
			metrics.RecordToolCall(tmpl.Name, "error", time.Since(start).Seconds())
			log.Warn().Err(err).Str("tool", tmpl.Name).Msg("tool call failed")
			return mcpgo.NewToolResultError(platformerrors.ToolResultMessage(err)), nil
		}

		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			metrics.RecordToolCall(tmpl.Name, "error", time.Since(start).Seconds())
			wrapped := platformerrors.Wrap(platformerrors.ErrorTypeInternal, "encoding tool response", err)
			return mcpgo.NewToolResultError(platformerrors.ToolResultMessage(wrapped)), nil
		}

		metrics.RecordToolCall(tmpl.Name, "success", time.Since(start).Seconds())
		return mcpgo.NewToolResultText(string(payload)), nil
	}
}
