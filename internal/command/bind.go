package command

import (
	"context"
	"sync/atomic"

	"github.com/kapu/pokedex-web-go/internal/domain"
	"go.uber.org/zap"
)

// Bind connects the two user actions of src to the registry, rendering into
// out. While a batch is in flight further activations are dropped, the same
// way a disabled button ignores clicks. Searches are never gated.
func Bind(src domain.ActionSource, out domain.Surface, registry *Registry, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var batchInFlight atomic.Bool

	src.OnSubmit(func(ctx context.Context, query string) {
		params := map[string]any{"query": query}
		if err := registry.Execute(ctx, out, domain.CommandSearch.String(), params); err != nil {
			logger.Error("Search command failed", zap.Error(err))
		}
	})

	src.OnActivateBatch(func(ctx context.Context) {
		if !batchInFlight.CompareAndSwap(false, true) {
			logger.Debug("Batch already running, activation ignored")
			return
		}
		defer batchInFlight.Store(false)

		if err := registry.Execute(ctx, out, domain.CommandBatch.String(), nil); err != nil {
			logger.Error("Batch command failed", zap.Error(err))
		}
	})
}
