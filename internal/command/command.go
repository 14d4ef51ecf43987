package command

import (
	"context"

	"github.com/kapu/pokedex-web-go/internal/adapter"
	"github.com/kapu/pokedex-web-go/internal/domain"
	"github.com/kapu/pokedex-web-go/internal/service"
	"go.uber.org/zap"
)

// Command runs one user action against a Surface. User-facing failures are
// reported through the Surface; the returned error is for wiring problems.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, out domain.Surface, params map[string]any) error
}

type Dependencies struct {
	Client         service.PokemonFetcher
	Views          *adapter.ViewBuilder
	BatchType      string
	MaxConcurrency int // 0 launches every detail fetch at once
	Logger         *zap.Logger
}
