package catchall

import (
	"context"

	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

// apiKeyContextKey is the context key for the connection-scoped API key
type apiKeyContextKey struct{}

// ContextWithAPIKey returns a context carrying a connection-scoped API key.
// Empty values are not stored, so a later lookup falls through to the next
// credential source.
func ContextWithAPIKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, apiKeyContextKey{}, key)
}

// APIKeyFromContext retrieves the connection-scoped API key, if any. The key
// travels in the per-call context, never in process-wide state, so concurrent
// connections cannot observe each other's credentials.
func APIKeyFromContext(ctx context.Context) string {
	if val := ctx.Value(apiKeyContextKey{}); val != nil {
		if key, ok := val.(string); ok {
			return key
		}
	}
	return ""
}

// ResolveAPIKey returns the first non-empty credential among the explicit
// tool argument, the connection-scoped value, and the environment default,
// in that order. An explicit argument always overrides a connection default,
// and a connection default always overrides the process-wide one.
func ResolveAPIKey(explicit, connectionScoped, environmentDefault string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if connectionScoped != "" {
		return connectionScoped, nil
	}
	if environmentDefault != "" {
		return environmentDefault, nil
	}
	return "", platformerrors.New(platformerrors.ErrorTypeConfig,
		"credential required: pass the api_key argument, connect with ?apiKey=YOUR_KEY, or set NEWSCATCHER_API_KEY")
}
