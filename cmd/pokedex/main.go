// Package main is the entry point for the Pokédex web server and CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kapu/pokedex-web-go/internal/app"
	"github.com/kapu/pokedex-web-go/internal/config"
	"github.com/kapu/pokedex-web-go/internal/util"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "PokeAPI search card and type grid",
	Long: `pokedex looks up Pokémon on PokeAPI. It serves a browser page with a
search card and a type grid, or prints the same panels in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var failed panelError
		if !errors.As(err, &failed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(batchCmd)
}

// bootstrap loads configuration, the logger and the application container.
func bootstrap(ctx context.Context) (*app.Container, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	buildCtx, buildCancel := context.WithTimeout(ctx, 30*time.Second)
	defer buildCancel()

	container, err := app.Build(buildCtx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, fmt.Errorf("failed to assemble application: %w", err)
	}

	return container, func() { _ = logger.Sync() }, nil
}
