package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/kapu/pokedex-web-go/internal/adapter"
	"github.com/kapu/pokedex-web-go/internal/constants"
	"github.com/kapu/pokedex-web-go/internal/domain"
	"github.com/kapu/pokedex-web-go/internal/util"
	"go.uber.org/zap"
)

type SearchCommand struct {
	deps *Dependencies
}

func NewSearchCommand(deps *Dependencies) *SearchCommand {
	return &SearchCommand{deps: deps}
}

func (c *SearchCommand) Name() string {
	return domain.CommandSearch.String()
}

func (c *SearchCommand) Description() string {
	return "Look up a single Pokémon by name or ID"
}

func (c *SearchCommand) Execute(ctx context.Context, out domain.Surface, params map[string]any) error {
	if err := c.ensureDeps(out); err != nil {
		return err
	}

	query, _ := params["query"].(string)
	c.Search(ctx, out, query)
	return nil
}

// Search runs idle -> searching -> found|not-found and returns the detail
// panel it left on out.
func (c *SearchCommand) Search(ctx context.Context, out domain.Surface, query string) domain.DetailView {
	query = strings.TrimSpace(query)

	if query == "" {
		view := adapter.EmptyDetailView()
		out.SetStatus(domain.ErrorStatus(constants.Messages.EmptyQuery))
		out.ShowDetail(view)
		return view
	}

	out.SetStatus(domain.InfoStatus(fmt.Sprintf(constants.Messages.Searching, query)))

	pokemon, err := c.deps.Client.FetchPokemon(ctx, query)
	if err != nil {
		c.deps.Logger.Info("Pokemon lookup failed",
			zap.String("query", query),
			zap.Error(err),
		)
		view := adapter.EmptyDetailView()
		out.ShowDetail(view)
		out.SetStatus(domain.ErrorStatus(constants.Messages.NotFound))
		return view
	}

	view := c.deps.Views.Detail(pokemon)
	out.ShowDetail(view)
	out.SetStatus(domain.OKStatus(fmt.Sprintf(constants.Messages.Found, util.Capitalize(query))))

	c.deps.Logger.Info("Pokemon found",
		zap.String("query", query),
		zap.Int("id", pokemon.ID),
	)
	return view
}

func (c *SearchCommand) ensureDeps(out domain.Surface) error {
	if c == nil || c.deps == nil {
		return fmt.Errorf("search command dependencies not configured")
	}
	if c.deps.Client == nil || c.deps.Views == nil || c.deps.Logger == nil {
		return fmt.Errorf("search command services not configured")
	}
	if out == nil {
		return fmt.Errorf("search command requires a surface")
	}
	return nil
}
