package command

import (
	"context"
	"fmt"
	"sync"

	"github.com/kapu/pokedex-web-go/internal/adapter"
	"github.com/kapu/pokedex-web-go/internal/domain"
	"github.com/kapu/pokedex-web-go/pkg/errors"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	mu           sync.Mutex
	pokemon      map[string]*domain.Pokemon
	members      []string
	membersErr   error
	pokemonCalls []string
	typeCalls    []string
	beforeFetch  func(name string) error
	beforeList   func()
}

func (f *fakeFetcher) FetchPokemon(_ context.Context, query string) (*domain.Pokemon, error) {
	f.mu.Lock()
	f.pokemonCalls = append(f.pokemonCalls, query)
	hook := f.beforeFetch
	f.mu.Unlock()

	if hook != nil {
		if err := hook(query); err != nil {
			return nil, err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.pokemon[query]; ok {
		return p, nil
	}
	return nil, errors.NewNotFoundError(query, 404, nil)
}

func (f *fakeFetcher) FetchTypeMembers(_ context.Context, typeName string) ([]string, error) {
	f.mu.Lock()
	f.typeCalls = append(f.typeCalls, typeName)
	hook := f.beforeList
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if f.membersErr != nil {
		return nil, f.membersErr
	}
	return f.members, nil
}

func (f *fakeFetcher) pokemonCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pokemonCalls)
}

func (f *fakeFetcher) typeCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.typeCalls)
}

func newDeps(client *fakeFetcher) *Dependencies {
	return &Dependencies{
		Client:    client,
		Views:     adapter.NewViewBuilder("https://fallback.example/25.png", "fairy"),
		BatchType: "fairy",
		Logger:    zap.NewNop(),
	}
}

func mon(id int, name string, types ...string) *domain.Pokemon {
	p := &domain.Pokemon{ID: id, Name: name, Height: 10, Weight: 100}
	for i, t := range types {
		p.Types = append(p.Types, domain.TypeSlot{Slot: i + 1, Type: domain.NamedResource{Name: t}})
	}
	return p
}

func errFetch(name string) error {
	return fmt.Errorf("fetch %s: connection reset", name)
}
