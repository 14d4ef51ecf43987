package command

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kapu/pokedex-web-go/internal/domain"
	"github.com/kapu/pokedex-web-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardIDs(view domain.GridView) []int {
	ids := make([]int, 0, len(view.Cards))
	for _, card := range view.Cards {
		ids = append(ids, card.ID)
	}
	return ids
}

func TestBatchSortsSurvivorsAndSkipsFailures(t *testing.T) {
	client := &fakeFetcher{
		members: []string{"a", "b", "c"},
		pokemon: map[string]*domain.Pokemon{
			"a": mon(5, "a", "fairy"),
			"c": mon(2, "c", "fairy"),
		},
	}
	client.beforeFetch = func(name string) error {
		if name == "b" {
			return errFetch(name)
		}
		return nil
	}
	out := NewRecorder()

	view := NewBatchCommand(newDeps(client)).Load(context.Background(), out)

	assert.Equal(t, []int{2, 5}, cardIDs(view))
	assert.Equal(t, view, out.Grid())
	assert.Equal(t, 3, client.pokemonCallCount())
	assert.Equal(t, domain.OKStatus("Ready: 2 fairy Pokémon."), out.Status())
}

func TestBatchControlDisabledThroughout(t *testing.T) {
	out := NewRecorder()
	require.True(t, out.BatchEnabled())

	var (
		mu       sync.Mutex
		observed []bool
	)
	record := func() {
		mu.Lock()
		observed = append(observed, out.BatchEnabled())
		mu.Unlock()
	}

	client := &fakeFetcher{
		members: []string{"clefairy", "togepi"},
		pokemon: map[string]*domain.Pokemon{"clefairy": mon(35, "clefairy", "fairy")},
	}
	client.beforeList = record
	client.beforeFetch = func(string) error {
		record()
		return nil
	}

	NewBatchCommand(newDeps(client)).Load(context.Background(), out)

	assert.Equal(t, []bool{false, false, false}, observed)
	assert.True(t, out.BatchEnabled())

	controls := out.EventsOf(EventControl)
	require.Len(t, controls, 2)
	assert.False(t, controls[0].Enabled)
	assert.True(t, controls[1].Enabled)
}

func TestBatchListingFailureSkipsPhaseTwo(t *testing.T) {
	client := &fakeFetcher{
		members:    []string{"clefairy"},
		membersErr: errors.NewCategoryFetchError("fairy", 503, nil),
	}
	out := NewRecorder()

	view := NewBatchCommand(newDeps(client)).Load(context.Background(), out)

	assert.Equal(t, 0, client.pokemonCallCount())
	assert.True(t, view.IsEmpty())
	assert.Equal(t, "Could not reach PokéAPI right now.", out.Grid().Placeholder)
	assert.Equal(t, domain.ErrorStatus("Could not load fairy Pokémon. Please try again."), out.Status())
	assert.True(t, out.BatchEnabled())
}

func TestBatchAllDetailFailuresIsErrorState(t *testing.T) {
	client := &fakeFetcher{members: []string{"x", "y"}}
	out := NewRecorder()

	view := NewBatchCommand(newDeps(client)).Load(context.Background(), out)

	assert.True(t, view.IsEmpty())
	assert.Equal(t, "Could not load the fairy Pokémon.", view.Placeholder)
	assert.Equal(t, domain.ErrorStatus("Could not load any fairy Pokémon."), out.Status())
	assert.True(t, out.BatchEnabled())
}

func TestBatchShowsLoadingStateFirst(t *testing.T) {
	client := &fakeFetcher{members: []string{}}
	out := NewRecorder()

	NewBatchCommand(newDeps(client)).Load(context.Background(), out)

	events := out.Events()
	require.GreaterOrEqual(t, len(events), 3)
	assert.Equal(t, EventControl, events[0].Kind)
	assert.Equal(t, EventGrid, events[1].Kind)
	assert.Equal(t, "Loading list...", events[1].Grid.Placeholder)
	assert.Equal(t, domain.InfoStatus("Loading all fairy Pokémon..."), events[2].Status)
}

func TestBatchFansOutEveryFetch(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	pokemon := make(map[string]*domain.Pokemon, len(names))
	for i, name := range names {
		pokemon[name] = mon(len(names)-i, name, "fairy")
	}

	var started sync.WaitGroup
	started.Add(len(names))
	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()

	client := &fakeFetcher{members: names, pokemon: pokemon}
	client.beforeFetch = func(name string) error {
		started.Done()
		select {
		case <-allStarted:
			return nil
		case <-time.After(2 * time.Second):
			return fmt.Errorf("%s waited for siblings that never started", name)
		}
	}
	out := NewRecorder()

	view := NewBatchCommand(newDeps(client)).Load(context.Background(), out)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, cardIDs(view))
}

func TestBatchRespectsConcurrencyCap(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	pokemon := map[string]*domain.Pokemon{}
	for i, name := range names {
		pokemon[name] = mon(i+1, name)
	}

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	client := &fakeFetcher{members: names, pokemon: pokemon}
	client.beforeFetch = func(string) error {
		mu.Lock()
		active++
		if active > maxSeen {
			maxSeen = active
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		mu.Lock()
		active--
		mu.Unlock()
		return nil
	}

	deps := newDeps(client)
	deps.MaxConcurrency = 1
	view := NewBatchCommand(deps).Load(context.Background(), NewRecorder())

	assert.Len(t, view.Cards, 4)
	assert.Equal(t, 1, maxSeen)
}

func TestBatchDescriptionNamesType(t *testing.T) {
	deps := newDeps(&fakeFetcher{})
	deps.BatchType = "ghost"
	assert.Contains(t, NewBatchCommand(deps).Description(), "ghost")
	assert.Equal(t, "batch", NewBatchCommand(deps).Name())
}
