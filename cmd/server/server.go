package main

import (
	"context"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	domain "github.com/newscatcher/catchall-mcp/internal/domain/catchall"
	"github.com/newscatcher/catchall-mcp/internal/infrastructure/auth"
	infracatchall "github.com/newscatcher/catchall-mcp/internal/infrastructure/catchall"
	"github.com/newscatcher/catchall-mcp/internal/infrastructure/config"
	"github.com/newscatcher/catchall-mcp/internal/infrastructure/logger"
	_ "github.com/newscatcher/catchall-mcp/internal/infrastructure/metrics" // Register Prometheus metrics
	"github.com/newscatcher/catchall-mcp/internal/infrastructure/openapi"
	"github.com/newscatcher/catchall-mcp/internal/interfaces/httpserver"
	"github.com/newscatcher/catchall-mcp/internal/interfaces/httpserver/routes/mcp"
)

type Application struct {
	config     *config.Config
	httpServer *httpserver.HTTPServer
	mcpRoute   *mcp.MCPRoute
}

func init() {
	// Initialize logger with default settings
	logger.Init("info", "json")
}

func (app *Application) Start(ctx context.Context) error {
	if app.config.Transport == config.TransportStdio {
		log.Info().Msg("serving MCP over stdio")
		return mcpserver.ServeStdio(app.mcpRoute.Server())
	}

	log.Info().Str("address", ":"+app.config.HTTPPort).Msg("Server listening")
	return app.httpServer.Run()
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Re-initialize logger with config settings
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("http_port", cfg.HTTPPort).
		Str("transport", cfg.Transport).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CatchAll MCP service")

	application, err := createApplication(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create application")
	}

	if err := application.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// createApplication wires the application dependencies together.
func createApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	templates, err := loadTemplates(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := infracatchall.NewClient(infracatchall.Options{
		BaseURL: cfg.BaseURL,
		Timeout: time.Duration(cfg.HTTPTimeout) * time.Second,
	})
	service := domain.NewService(client, cfg.APIKey)

	catchAllMCP := mcp.NewCatchAllMCP(service, templates)
	mcpRoute := mcp.NewMCPRoute(catchAllMCP)

	authValidator, err := auth.NewValidator(ctx, cfg, log.Logger)
	if err != nil {
		return nil, err
	}

	return &Application{
		config:     cfg,
		httpServer: httpserver.NewHTTPServer(cfg, mcpRoute, authValidator),
		mcpRoute:   mcpRoute,
	}, nil
}

// loadTemplates picks the tool-template source: the static table, or
// templates derived from the upstream OpenAPI document.
func loadTemplates(ctx context.Context, cfg *config.Config) ([]domain.ToolTemplate, error) {
	if cfg.ToolSource == config.ToolSourceOpenAPI {
		return openapi.ImportTemplates(ctx, cfg.BaseURL+"/openapi.json")
	}
	return domain.Templates(), nil
}
