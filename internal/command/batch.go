package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/kapu/pokedex-web-go/internal/adapter"
	"github.com/kapu/pokedex-web-go/internal/constants"
	"github.com/kapu/pokedex-web-go/internal/domain"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

type BatchCommand struct {
	deps *Dependencies
}

func NewBatchCommand(deps *Dependencies) *BatchCommand {
	return &BatchCommand{deps: deps}
}

func (c *BatchCommand) Name() string {
	return domain.CommandBatch.String()
}

func (c *BatchCommand) Description() string {
	return fmt.Sprintf("Load every %s-type Pokémon", c.batchType())
}

func (c *BatchCommand) Execute(ctx context.Context, out domain.Surface, _ map[string]any) error {
	if err := c.ensureDeps(out); err != nil {
		return err
	}

	c.Load(ctx, out)
	return nil
}

// Load lists the configured type, fetches every member concurrently and
// renders the survivors sorted by id. The batch control is disabled for the
// whole call and re-enabled on every exit path.
func (c *BatchCommand) Load(ctx context.Context, out domain.Surface) domain.GridView {
	typeName := c.batchType()

	out.SetBatchEnabled(false)
	defer out.SetBatchEnabled(true)

	out.ShowGrid(adapter.LoadingGridView())
	out.SetStatus(domain.InfoStatus(fmt.Sprintf(constants.Messages.BatchLoading, typeName)))

	names, err := c.deps.Client.FetchTypeMembers(ctx, typeName)
	if err != nil {
		c.deps.Logger.Warn("Type listing failed",
			zap.String("type", typeName),
			zap.Error(err),
		)
		view := adapter.UnreachableGridView()
		out.ShowGrid(view)
		out.SetStatus(domain.ErrorStatus(fmt.Sprintf(constants.Messages.BatchFailed, typeName)))
		return view
	}

	loaded := c.fetchAll(ctx, names)
	sort.SliceStable(loaded, func(i, j int) bool {
		return loaded[i].ID < loaded[j].ID
	})

	view := c.deps.Views.Grid(loaded)
	out.ShowGrid(view)

	if len(loaded) == 0 {
		out.SetStatus(domain.ErrorStatus(fmt.Sprintf(constants.Messages.BatchEmpty, typeName)))
	} else {
		out.SetStatus(domain.OKStatus(fmt.Sprintf(constants.Messages.BatchReady, len(loaded), typeName)))
	}

	c.deps.Logger.Info("Batch loaded",
		zap.String("type", typeName),
		zap.Int("listed", len(names)),
		zap.Int("loaded", len(loaded)),
	)
	return view
}

type fetchOutcome struct {
	name    string
	pokemon *domain.Pokemon
	err     error
}

// fetchAll waits for every lookup to settle and keeps only the successes.
func (c *BatchCommand) fetchAll(ctx context.Context, names []string) []*domain.Pokemon {
	p := pool.New()
	if c.deps.MaxConcurrency > 0 {
		p = p.WithMaxGoroutines(c.deps.MaxConcurrency)
	}

	outcomes := make([]fetchOutcome, len(names))
	for idx, name := range names {
		idx, name := idx, name
		p.Go(func() {
			pokemon, err := c.deps.Client.FetchPokemon(ctx, name)
			outcomes[idx] = fetchOutcome{name: name, pokemon: pokemon, err: err}
		})
	}

	p.Wait()

	loaded := make([]*domain.Pokemon, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.err != nil || outcome.pokemon == nil {
			c.deps.Logger.Debug("Skipping member that failed to load",
				zap.String("name", outcome.name),
				zap.Error(outcome.err),
			)
			continue
		}
		loaded = append(loaded, outcome.pokemon)
	}
	return loaded
}

func (c *BatchCommand) batchType() string {
	if c == nil || c.deps == nil || c.deps.BatchType == "" {
		return constants.APIConfig.DefaultBatchType
	}
	return c.deps.BatchType
}

func (c *BatchCommand) ensureDeps(out domain.Surface) error {
	if c == nil || c.deps == nil {
		return fmt.Errorf("batch command dependencies not configured")
	}
	if c.deps.Client == nil || c.deps.Views == nil || c.deps.Logger == nil {
		return fmt.Errorf("batch command services not configured")
	}
	if out == nil {
		return fmt.Errorf("batch command requires a surface")
	}
	return nil
}
