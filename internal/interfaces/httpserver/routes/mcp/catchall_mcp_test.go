package mcp

import (
	"context"
	"net/http/httptest"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newscatcher/catchall-mcp/internal/domain/catchall"
	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

type stubForwarder struct {
	apiKey string
	req    catchall.UpstreamRequest
	result any
	err    error
}

func (s *stubForwarder) Forward(_ context.Context, apiKey string, req catchall.UpstreamRequest) (any, error) {
	s.apiKey = apiKey
	s.req = req
	return s.result, s.err
}

func callRequest(args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func findTemplate(t *testing.T, name string) catchall.ToolTemplate {
	t.Helper()
	for _, tmpl := range catchall.Templates() {
		if tmpl.Name == name {
			return tmpl
		}
	}
	t.Fatalf("no template named %q", name)
	return catchall.ToolTemplate{}
}

func TestToolHandlerSuccess(t *testing.T) {
	forwarder := &stubForwarder{result: map[string]any{"job_id": "j-1"}}
	handler := NewCatchAllMCP(catchall.NewService(forwarder, "env-key"), catchall.Templates())

	result, err := handler.toolHandler(findTemplate(t, "submit_query"))(
		context.Background(), callRequest(map[string]any{"query": "fusion startups"}))
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"job_id":"j-1"}`, resultText(t, result))
	assert.Equal(t, "env-key", forwarder.apiKey)
	assert.Equal(t, map[string]any{"query": "fusion startups"}, forwarder.req.Body)
}

func TestToolHandlerExplicitAPIKey(t *testing.T) {
	forwarder := &stubForwarder{result: map[string]any{}}
	handler := NewCatchAllMCP(catchall.NewService(forwarder, "env-key"), catchall.Templates())

	_, err := handler.toolHandler(findTemplate(t, "list_monitors"))(
		context.Background(), callRequest(map[string]any{"api_key": "arg-key"}))
	require.NoError(t, err)
	assert.Equal(t, "arg-key", forwarder.apiKey)
}

func TestToolHandlerMissingCredential(t *testing.T) {
	forwarder := &stubForwarder{}
	handler := NewCatchAllMCP(catchall.NewService(forwarder, ""), catchall.Templates())

	result, err := handler.toolHandler(findTemplate(t, "submit_query"))(
		context.Background(), callRequest(map[string]any{"query": "anything"}))
	require.NoError(t, err, "failures surface as error results, not protocol errors")

	assert.True(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "Error: ")
	assert.Contains(t, text, "credential required")
}

func TestToolHandlerUpstreamError(t *testing.T) {
	forwarder := &stubForwarder{err: platformerrors.NewAPI(429, "rate limited")}
	handler := NewCatchAllMCP(catchall.NewService(forwarder, "env-key"), catchall.Templates())

	result, err := handler.toolHandler(findTemplate(t, "get_job_status"))(
		context.Background(), callRequest(map[string]any{"job_id": "j-1"}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Equal(t, "Error (429): rate limited", resultText(t, result))
}

func TestExtractAPIKey(t *testing.T) {
	fn := ExtractAPIKey()

	withKey := httptest.NewRequest("POST", "/v1/mcp?apiKey=conn-secret", nil)
	ctx := fn(context.Background(), withKey)
	assert.Equal(t, "conn-secret", catchall.APIKeyFromContext(ctx))

	withoutKey := httptest.NewRequest("POST", "/v1/mcp", nil)
	ctx = fn(context.Background(), withoutKey)
	assert.Empty(t, catchall.APIKeyFromContext(ctx))
}
