package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kapu/pokedex-web-go/internal/domain"
	"github.com/kapu/pokedex-web-go/pkg/errors"
	"go.uber.org/zap"
)

// PokemonFetcher is the read-only view of PokeAPI used by the commands.
type PokemonFetcher interface {
	FetchPokemon(ctx context.Context, query string) (*domain.Pokemon, error)
	FetchTypeMembers(ctx context.Context, typeName string) ([]string, error)
}

// PokeAPIClient issues GET requests against PokeAPI. It keeps no mutable
// state and is safe for concurrent use.
type PokeAPIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewPokeAPIClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *PokeAPIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PokeAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchPokemon looks up a single Pokémon by name or id. Every failure is
// reported as a NotFoundError.
func (c *PokeAPIClient) FetchPokemon(ctx context.Context, query string) (*domain.Pokemon, error) {
	path := "/pokemon/" + url.PathEscape(strings.ToLower(query))

	body, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, errors.NewNotFoundError(query, errors.StatusCodeOf(err), err)
	}

	var pokemon domain.Pokemon
	if err := json.Unmarshal(body, &pokemon); err != nil {
		return nil, errors.NewNotFoundError(query, http.StatusOK, err)
	}
	if pokemon.ID <= 0 || pokemon.Name == "" {
		return nil, errors.NewNotFoundError(query, http.StatusOK, fmt.Errorf("response is missing id or name"))
	}

	return &pokemon, nil
}

// FetchTypeMembers returns the member names of a type in listing order.
func (c *PokeAPIClient) FetchTypeMembers(ctx context.Context, typeName string) ([]string, error) {
	path := "/type/" + url.PathEscape(typeName)

	body, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, errors.NewCategoryFetchError(typeName, errors.StatusCodeOf(err), err)
	}

	var listing domain.TypeListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, errors.NewCategoryFetchError(typeName, http.StatusOK, err)
	}

	return listing.MemberNames(), nil
}

func (c *PokeAPIClient) doRequest(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.NewAPIError("failed to create request", 500, map[string]any{
			"url": reqURL,
		}).WithCause(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("PokeAPI request failed", zap.String("url", reqURL), zap.Error(err))
		return nil, errors.NewAPIError("request failed", 502, map[string]any{
			"url": reqURL,
		}).WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewAPIError("failed to read response", resp.StatusCode, map[string]any{
			"url": reqURL,
		}).WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("PokeAPI returned non-2xx",
			zap.String("url", reqURL),
			zap.Int("status", resp.StatusCode),
		)
		return nil, errors.NewAPIError(fmt.Sprintf("PokeAPI error: %s", resp.Status), resp.StatusCode, map[string]any{
			"url": reqURL,
		})
	}

	c.logger.Debug("PokeAPI request ok", zap.String("url", reqURL), zap.Int("bytes", len(body)))
	return body, nil
}
