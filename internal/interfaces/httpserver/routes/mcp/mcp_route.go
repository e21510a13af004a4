package mcp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/newscatcher/catchall-mcp/internal/interfaces/httpserver/responses"
	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

const serverInstructions = "Search and monitor news through the Newscatcher CatchAll API. " +
	"Submit a query or URL with submit_query/submit_url, poll get_job_status until the job " +
	"completes, then fetch clustered and summarized articles with pull_results. Monitors " +
	"re-run URL extractions on a schedule."

var allowedMCPMethods = map[string]bool{
	// Initialization / handshake
	"initialize":                true,
	"notifications/initialized": true,
	"ping":                      true,

	// Tools
	"tools/list": true,
	"tools/call": true,
}

type MCPRoute struct {
	catchAllMCP *CatchAllMCP
	mcpServer   *mcpserver.MCPServer
	httpHandler http.Handler
}

func NewMCPRoute(
	catchAllMCP *CatchAllMCP,
) *MCPRoute {
	server := mcpserver.NewMCPServer("newscatcher-catchall", "1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(serverInstructions),
	)

	catchAllMCP.RegisterTools(server)

	return &MCPRoute{
		catchAllMCP: catchAllMCP,
		mcpServer:   server,
		httpHandler: mcpserver.NewStreamableHTTPServer(server,
			mcpserver.WithStateLess(true),
			mcpserver.WithHTTPContextFunc(ExtractAPIKey()),
		),
	}
}

// Server exposes the underlying MCP server for the stdio transport.
func (route *MCPRoute) Server() *mcpserver.MCPServer {
	return route.mcpServer
}

func (route *MCPRoute) RegisterRouter(router *gin.RouterGroup) {
	router.POST("/mcp",
		MCPMethodGuard(allowedMCPMethods),
		route.serveMCP,
	)
}

// serveMCP streams Model Context Protocol responses using the underlying MCP server.
func (route *MCPRoute) serveMCP(reqCtx *gin.Context) {
	route.httpHandler.ServeHTTP(reqCtx.Writer, reqCtx.Request)
}

func MCPMethodGuard(allowedMethods map[string]bool) gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		bodyBytes, err := io.ReadAll(reqCtx.Request.Body)
		if err != nil {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeInternal, "failed to read MCP request body")
			return
		}
		_ = reqCtx.Request.Body.Close()

		if len(bodyBytes) == 0 {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "empty MCP request body")
			return
		}

		reqCtx.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var payload struct {
			Method string `json:"method"`
		}

		if err := json.Unmarshal(bodyBytes, &payload); err != nil {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid MCP request payload")
			return
		}

		if payload.Method == "" {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "missing method field in MCP request")
			return
		}

		if !allowedMethods[payload.Method] {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "unsupported MCP method: "+payload.Method)
			return
		}

		reqCtx.Next()
	}
}
