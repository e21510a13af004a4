package mcp

import (
	"context"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/newscatcher/catchall-mcp/internal/domain/catchall"
)

// APIKeyQueryParam is the connection URL query parameter carrying a
// connection-scoped credential, e.g. /v1/mcp?apiKey=YOUR_KEY.
const APIKeyQueryParam = "apiKey"

// ExtractAPIKey copies the connection-scoped API key from the request URL
// into the per-call context. Each HTTP request gets its own context, so
// concurrent connections with different keys never observe each other's
// credential.
func ExtractAPIKey() mcpserver.HTTPContextFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		key := r.URL.Query().Get(APIKeyQueryParam)
		if key == "" {
			return ctx
		}

		log.Debug().Msg("connection-scoped API key attached to request")
		return catchall.ContextWithAPIKey(ctx, key)
	}
}
