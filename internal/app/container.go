package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kapu/pokedex-web-go/internal/adapter"
	"github.com/kapu/pokedex-web-go/internal/command"
	"github.com/kapu/pokedex-web-go/internal/config"
	"github.com/kapu/pokedex-web-go/internal/service"
	"github.com/kapu/pokedex-web-go/internal/web"
	"go.uber.org/zap"
)

// Container bundles assembled services for constructing runtime components
// like the web server or a one-shot CLI run.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	Client   *service.PokeAPIClient
	Views    *adapter.ViewBuilder
	Registry *command.Registry
	HTML     *adapter.HTMLRenderer
	Terminal *adapter.TerminalRenderer
}

// NewServer instantiates the HTTP server using the pre-built dependency graph.
func (c *Container) NewServer() (*web.Server, error) {
	if c == nil || c.Registry == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return web.NewServer(&web.Dependencies{
		Addr:           c.Config.Server.Addr,
		AllowedOrigins: c.Config.Server.CORSAllowedOrigins,
		BatchType:      c.Config.Batch.Type,
		Registry:       c.Registry,
		Renderer:       c.HTML,
		Logger:         c.Logger,
	})
}

// Run executes one command against a fresh in-memory surface.
func (c *Container) Run(ctx context.Context, name string, params map[string]any) (*command.Recorder, error) {
	recorder := command.NewRecorder()
	if err := c.Registry.Execute(ctx, recorder, name, params); err != nil {
		return nil, err
	}
	return recorder, nil
}

// Build assembles the PokeAPI client, view builders, renderers and commands.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := service.NewPokeAPIClient(cfg.PokeAPI.BaseURL, &http.Client{
		Timeout: cfg.PokeAPI.Timeout,
	}, logger.Named("pokeapi"))

	views := adapter.NewViewBuilder(cfg.PokeAPI.FallbackSpriteURL, cfg.Batch.Type)

	registry := command.NewDefaultRegistry(&command.Dependencies{
		Client:         client,
		Views:          views,
		BatchType:      cfg.Batch.Type,
		MaxConcurrency: cfg.Batch.MaxConcurrency,
		Logger:         logger.Named("command"),
	})

	logger.Info("Application assembled",
		zap.String("pokeapi", cfg.PokeAPI.BaseURL),
		zap.String("batch_type", cfg.Batch.Type),
		zap.Strings("commands", registry.Names()),
	)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Client:   client,
		Views:    views,
		Registry: registry,
		HTML:     adapter.NewHTMLRenderer(),
		Terminal: adapter.NewTerminalRenderer(0, 0),
	}, nil
}
