package adapter

import (
	"fmt"
	"strconv"

	"github.com/kapu/pokedex-web-go/internal/constants"
	"github.com/kapu/pokedex-web-go/internal/domain"
	"github.com/kapu/pokedex-web-go/internal/util"
)

// ViewBuilder turns Pokémon records into panel state. It is a pure function
// of its inputs.
type ViewBuilder struct {
	fallbackSprite string
	batchType      string
}

func NewViewBuilder(fallbackSprite, batchType string) *ViewBuilder {
	if fallbackSprite == "" {
		fallbackSprite = constants.APIConfig.FallbackSpriteURL
	}
	if batchType == "" {
		batchType = constants.APIConfig.DefaultBatchType
	}
	return &ViewBuilder{fallbackSprite: fallbackSprite, batchType: batchType}
}

// Detail builds the single-result panel; nil yields the empty placeholder.
func (b *ViewBuilder) Detail(p *domain.Pokemon) domain.DetailView {
	if p == nil {
		return EmptyDetailView()
	}

	abilities := util.JoinCapitalized(p.AbilityNames(), constants.DisplayLimits.DetailAbilities)
	if abilities == "" {
		abilities = constants.Messages.NotAvailable
	}

	baseExperience := constants.Messages.NotAvailable
	if p.BaseExperience != nil {
		baseExperience = strconv.Itoa(*p.BaseExperience)
	}

	return domain.DetailView{
		ID:             p.ID,
		Name:           util.Capitalize(p.Name),
		Theme:          util.TypeClass(p.PrimaryType()),
		Types:          typeBadges(p),
		ImageURL:       p.SpriteURL(b.fallbackSprite),
		Height:         util.FormatTenths(p.Height, "m"),
		Weight:         util.FormatTenths(p.Weight, "kg"),
		BaseExperience: baseExperience,
		Abilities:      abilities,
	}
}

// Grid builds the collection panel in the given order. Nil records are skipped.
func (b *ViewBuilder) Grid(list []*domain.Pokemon) domain.GridView {
	cards := make([]domain.CardView, 0, len(list))
	for _, p := range list {
		if p == nil {
			continue
		}
		cards = append(cards, domain.CardView{
			ID:       p.ID,
			Name:     util.Capitalize(p.Name),
			Theme:    util.TypeClass(p.PrimaryType()),
			Types:    typeBadges(p),
			ImageURL: p.SpriteURL(b.fallbackSprite),
		})
	}
	if len(cards) == 0 {
		return b.EmptyGrid()
	}
	return domain.GridView{Cards: cards}
}

// EmptyGrid is shown whenever the collection has no cards.
func (b *ViewBuilder) EmptyGrid() domain.GridView {
	return domain.GridView{Placeholder: fmt.Sprintf(constants.Messages.GridEmpty, b.batchType)}
}

func EmptyDetailView() domain.DetailView {
	return domain.DetailView{Empty: true, Placeholder: constants.Messages.DetailPlaceholder}
}

func LoadingGridView() domain.GridView {
	return domain.GridView{Placeholder: constants.Messages.GridLoading}
}

func UnreachableGridView() domain.GridView {
	return domain.GridView{Placeholder: constants.Messages.GridUnreachable}
}

func typeBadges(p *domain.Pokemon) []domain.TypeBadge {
	names := p.TypeNames()
	badges := make([]domain.TypeBadge, 0, len(names))
	for _, name := range names {
		badges = append(badges, domain.TypeBadge{
			Label: util.Capitalize(name),
			Class: util.TypeClass(name),
		})
	}
	return badges
}
