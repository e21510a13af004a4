package catchall

import (
	"context"
)

// Forwarder issues one upstream HTTP request and returns the normalized
// JSON value, or a classified error. Implemented by the infrastructure
// client; no retries, one upstream request per call.
type Forwarder interface {
	Forward(ctx context.Context, apiKey string, req UpstreamRequest) (any, error)
}

// Service is the request gateway: it resolves the caller's credential,
// builds the upstream request from the tool's template, and forwards it.
type Service struct {
	forwarder Forwarder
	envAPIKey string
}

// NewService creates the gateway. envAPIKey is the process-wide default
// credential (NEWSCATCHER_API_KEY), lowest in the precedence chain.
func NewService(forwarder Forwarder, envAPIKey string) *Service {
	return &Service{
		forwarder: forwarder,
		envAPIKey: envAPIKey,
	}
}

// Call executes one tool invocation against the upstream API. Credential
// resolution happens before request construction, so a missing credential
// short-circuits without any network traffic.
func (s *Service) Call(ctx context.Context, tmpl ToolTemplate, args map[string]any) (any, error) {
	explicit, _ := args["api_key"].(string)
	apiKey, err := ResolveAPIKey(explicit, APIKeyFromContext(ctx), s.envAPIKey)
	if err != nil {
		return nil, err
	}

	req, err := BuildRequest(tmpl, args)
	if err != nil {
		return nil, err
	}

	return s.forwarder.Forward(ctx, apiKey, req)
}
