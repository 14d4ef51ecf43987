package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kapu/pokedex-web-go/internal/constants"
)

type Config struct {
	PokeAPI PokeAPIConfig
	Batch   BatchConfig
	Server  ServerConfig
	Logging LoggingConfig
}

type PokeAPIConfig struct {
	BaseURL           string
	Timeout           time.Duration
	FallbackSpriteURL string
}

type BatchConfig struct {
	Type           string
	MaxConcurrency int
}

type ServerConfig struct {
	Addr               string
	CORSAllowedOrigins []string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		PokeAPI: PokeAPIConfig{
			BaseURL:           strings.TrimRight(getEnv("POKEAPI_BASE_URL", constants.APIConfig.PokeAPIBaseURL), "/"),
			Timeout:           time.Duration(getEnvInt("POKEAPI_TIMEOUT_SECONDS", 0)) * time.Second,
			FallbackSpriteURL: getEnv("FALLBACK_SPRITE_URL", constants.APIConfig.FallbackSpriteURL),
		},
		Batch: BatchConfig{
			Type:           strings.ToLower(getEnv("BATCH_TYPE", constants.APIConfig.DefaultBatchType)),
			MaxConcurrency: getEnvInt("BATCH_MAX_CONCURRENCY", 0),
		},
		Server: ServerConfig{
			Addr:               getEnv("SERVER_ADDR", ":8080"),
			CORSAllowedOrigins: parseCommaSeparated(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:*")),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	parsed, err := url.Parse(c.PokeAPI.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("POKEAPI_BASE_URL must be an absolute http(s) URL, got %q", c.PokeAPI.BaseURL)
	}
	if c.PokeAPI.Timeout < 0 {
		return fmt.Errorf("POKEAPI_TIMEOUT_SECONDS must not be negative")
	}
	if c.PokeAPI.FallbackSpriteURL == "" {
		return fmt.Errorf("FALLBACK_SPRITE_URL must not be empty")
	}
	if strings.TrimSpace(c.Batch.Type) == "" {
		return fmt.Errorf("BATCH_TYPE is required")
	}
	if c.Batch.MaxConcurrency < 0 {
		return fmt.Errorf("BATCH_MAX_CONCURRENCY must not be negative")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("SERVER_ADDR is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
