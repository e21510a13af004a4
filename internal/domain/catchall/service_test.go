package catchall

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

type fakeForwarder struct {
	apiKey  string
	request UpstreamRequest
	calls   int
	result  any
	err     error
}

func (f *fakeForwarder) Forward(_ context.Context, apiKey string, req UpstreamRequest) (any, error) {
	f.calls++
	f.apiKey = apiKey
	f.request = req
	return f.result, f.err
}

func TestServiceCallForwardsRequest(t *testing.T) {
	forwarder := &fakeForwarder{result: map[string]any{"job_id": "j-123"}}
	svc := NewService(forwarder, "env-key")

	result, err := svc.Call(context.Background(), templateByName(t, "submit_query"),
		map[string]any{"query": "climate policy"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"job_id": "j-123"}, result)
	assert.Equal(t, "env-key", forwarder.apiKey)
	assert.Equal(t, "submit_query", forwarder.request.Operation)
	assert.Equal(t, map[string]any{"query": "climate policy"}, forwarder.request.Body)
}

func TestServiceCallCredentialPrecedence(t *testing.T) {
	forwarder := &fakeForwarder{}
	svc := NewService(forwarder, "env-key")
	ctx := ContextWithAPIKey(context.Background(), "conn-key")

	_, err := svc.Call(ctx, templateByName(t, "list_monitors"), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "conn-key", forwarder.apiKey)

	_, err = svc.Call(ctx, templateByName(t, "list_monitors"), map[string]any{"api_key": "arg-key"})
	require.NoError(t, err)
	assert.Equal(t, "arg-key", forwarder.apiKey)
}

func TestServiceCallNoCredentialShortCircuits(t *testing.T) {
	forwarder := &fakeForwarder{}
	svc := NewService(forwarder, "")

	_, err := svc.Call(context.Background(), templateByName(t, "submit_query"),
		map[string]any{"query": "anything"})
	require.Error(t, err)

	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeConfig))
	assert.Contains(t, platformerrors.ToolResultMessage(err), "credential required")
	assert.Zero(t, forwarder.calls, "missing credential must not reach the forwarder")
}

func TestServiceCallValidationBeforeForward(t *testing.T) {
	forwarder := &fakeForwarder{}
	svc := NewService(forwarder, "env-key")

	_, err := svc.Call(context.Background(), templateByName(t, "submit_query"), map[string]any{})
	require.Error(t, err)
	assert.True(t, platformerrors.IsType(err, platformerrors.ErrorTypeValidation))
	assert.Zero(t, forwarder.calls)
}
