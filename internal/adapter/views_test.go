package adapter

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/pokedex-web-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFallback = "https://fallback.example/25.png"

func ptr[T any](v T) *T { return &v }

func clefable() *domain.Pokemon {
	return &domain.Pokemon{
		ID:   36,
		Name: "clefable",
		Types: []domain.TypeSlot{
			{Slot: 1, Type: domain.NamedResource{Name: "fairy"}},
		},
		Abilities: []domain.AbilitySlot{
			{Slot: 1, Ability: domain.NamedResource{Name: "cute-charm"}},
			{Slot: 2, Ability: domain.NamedResource{Name: "magic-guard"}},
			{Slot: 3, IsHidden: true, Ability: domain.NamedResource{Name: "unaware"}},
		},
		Height:         13,
		Weight:         400,
		BaseExperience: ptr(242),
		Sprites: domain.Sprites{
			Other: &domain.OtherSprites{OfficialArtwork: &domain.ArtworkSprites{FrontDefault: ptr("https://art.example/36.png")}},
		},
	}
}

func parseFragment(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestDetailViewFields(t *testing.T) {
	view := NewViewBuilder(testFallback, "fairy").Detail(clefable())

	assert.False(t, view.Empty)
	assert.Equal(t, 36, view.ID)
	assert.Equal(t, "Clefable", view.Name)
	assert.Equal(t, "type-fairy", view.Theme)
	assert.Equal(t, []domain.TypeBadge{{Label: "Fairy", Class: "type-fairy"}}, view.Types)
	assert.Equal(t, "https://art.example/36.png", view.ImageURL)
	assert.Equal(t, "1.3 m", view.Height)
	assert.Equal(t, "40.0 kg", view.Weight)
	assert.Equal(t, "242", view.BaseExperience)
	assert.Equal(t, "Cute-charm, Magic-guard", view.Abilities)
}

func TestDetailViewMissingOptionalFields(t *testing.T) {
	p := &domain.Pokemon{ID: 10001, Name: "deoxys-attack"}
	view := NewViewBuilder(testFallback, "fairy").Detail(p)

	assert.Equal(t, "type-normal", view.Theme)
	assert.Empty(t, view.Types)
	assert.Equal(t, testFallback, view.ImageURL)
	assert.Equal(t, "N/A", view.Abilities)
	assert.Equal(t, "N/A", view.BaseExperience)
}

func TestDetailViewNilIsPlaceholder(t *testing.T) {
	assert.Equal(t, EmptyDetailView(), NewViewBuilder(testFallback, "fairy").Detail(nil))
	assert.True(t, EmptyDetailView().Empty)
}

func TestGridViewKeepsOrderAndAllTypes(t *testing.T) {
	togekiss := &domain.Pokemon{ID: 468, Name: "togekiss", Types: []domain.TypeSlot{
		{Slot: 1, Type: domain.NamedResource{Name: "fairy"}},
		{Slot: 2, Type: domain.NamedResource{Name: "flying"}},
	}}
	grid := NewViewBuilder(testFallback, "fairy").Grid([]*domain.Pokemon{togekiss, nil, clefable()})

	require.Len(t, grid.Cards, 2)
	assert.Equal(t, 468, grid.Cards[0].ID)
	assert.Equal(t, 36, grid.Cards[1].ID)
	assert.Len(t, grid.Cards[0].Types, 2)
	assert.Equal(t, testFallback, grid.Cards[0].ImageURL)
}

func TestGridViewEmptyIsPlaceholder(t *testing.T) {
	grid := NewViewBuilder(testFallback, "fairy").Grid(nil)

	assert.True(t, grid.IsEmpty())
	assert.Equal(t, "Could not load the fairy Pokémon.", grid.Placeholder)
}

func TestRenderDetailHTML(t *testing.T) {
	renderer := NewHTMLRenderer()
	view := NewViewBuilder(testFallback, "fairy").Detail(clefable())

	html, err := renderer.RenderDetail(view)
	require.NoError(t, err)

	doc := parseFragment(t, html)
	card := doc.Find("article.single-card")
	require.Equal(t, 1, card.Length())
	assert.True(t, card.HasClass("type-fairy"))
	assert.Equal(t, "#36", doc.Find(".pill.id").Text())
	assert.Equal(t, 1, doc.Find(".types .pill.type-fairy").Length())
	src, ok := doc.Find(".sprite img").Attr("src")
	assert.True(t, ok)
	assert.Equal(t, "https://art.example/36.png", src)
	assert.Equal(t, "Clefable", doc.Find("h3.name").Text())
	assert.Contains(t, doc.Find(".abilities").Text(), "Cute-charm, Magic-guard")
}

func TestRenderDetailIsIdempotent(t *testing.T) {
	renderer := NewHTMLRenderer()
	builder := NewViewBuilder(testFallback, "fairy")

	first, err := renderer.RenderDetail(builder.Detail(clefable()))
	require.NoError(t, err)
	second, err := renderer.RenderDetail(builder.Detail(clefable()))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderEmptyDetailHTML(t *testing.T) {
	html, err := NewHTMLRenderer().RenderDetail(EmptyDetailView())
	require.NoError(t, err)

	doc := parseFragment(t, html)
	assert.Equal(t, 1, doc.Find("article.single-card.empty").Length())
	assert.Equal(t, "The requested Pokémon was not found.", doc.Find(".placeholder").Text())
	assert.Equal(t, 0, doc.Find(".pill").Length())
}

func TestRenderGridHTML(t *testing.T) {
	builder := NewViewBuilder(testFallback, "fairy")
	html, err := NewHTMLRenderer().RenderGrid(builder.Grid([]*domain.Pokemon{
		{ID: 35, Name: "clefairy", Types: []domain.TypeSlot{{Type: domain.NamedResource{Name: "fairy"}}}},
		clefable(),
	}))
	require.NoError(t, err)

	doc := parseFragment(t, html)
	ids := doc.Find("article.card").Map(func(_ int, s *goquery.Selection) string {
		return s.Find(".pill.id").Text()
	})
	assert.Equal(t, []string{"#35", "#36"}, ids)
	assert.Equal(t, 0, doc.Find(".meta").Length())
}

func TestRenderGridEscapesNames(t *testing.T) {
	builder := NewViewBuilder(testFallback, "fairy")
	html, err := NewHTMLRenderer().RenderGrid(builder.Grid([]*domain.Pokemon{{ID: 1, Name: "<script>x</script>"}}))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Equal(t, "<script>x</script>", parseFragment(t, html).Find("h3.name").Text())
}

func TestTerminalRenderer(t *testing.T) {
	builder := NewViewBuilder(testFallback, "fairy")
	renderer := NewTerminalRenderer(0, 0)

	detail := renderer.RenderDetail(builder.Detail(clefable()))
	assert.Contains(t, detail, "#36 Clefable")
	assert.Contains(t, detail, "40.0 kg")

	grid := renderer.RenderGrid(builder.Grid(nil))
	assert.Contains(t, grid, "Could not load the fairy Pokémon.")

	assert.Empty(t, renderer.RenderStatus(domain.Status{}))
	assert.Contains(t, renderer.RenderStatus(domain.OKStatus("Ready")), "Ready")
}
