package catchall

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	domain "github.com/newscatcher/catchall-mcp/internal/domain/catchall"
	"github.com/newscatcher/catchall-mcp/internal/infrastructure/metrics"
	"github.com/newscatcher/catchall-mcp/internal/utils/platformerrors"
)

// Options configures the CatchAll HTTP client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// Client forwards tool invocations to the CatchAll REST API. One upstream
// request per call, no retries.
type Client struct {
	http *resty.Client
}

// NewClient creates a CatchAll API client.
func NewClient(opts Options) *Client {
	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(0)

	return &Client{http: httpClient}
}

// Forward implements the domain Forwarder: it issues the request, records
// upstream latency, and normalizes the response body.
func (c *Client) Forward(ctx context.Context, apiKey string, req domain.UpstreamRequest) (any, error) {
	r := c.http.R().
		SetContext(ctx).
		SetHeader("x-api-key", apiKey).
		SetHeader("Accept", "application/json")

	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(req.Body)
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	elapsed := time.Since(start)
	metrics.RecordUpstreamLatency(req.Operation, elapsed.Seconds())

	if err != nil {
		log.Error().Err(err).
			Str("operation", req.Operation).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("CatchAll request failed")
		return nil, platformerrors.Wrap(platformerrors.ErrorTypeTransport, "catchall request failed", err)
	}

	log.Debug().
		Str("operation", req.Operation).
		Int("status", resp.StatusCode()).
		Dur("duration", elapsed).
		Msg("CatchAll request completed")

	return Normalize(resp.StatusCode(), resp.Body())
}
