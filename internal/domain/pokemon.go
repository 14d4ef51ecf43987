package domain

import "github.com/kapu/pokedex-web-go/internal/util"

// NamedResource is PokeAPI's {name, url} reference shape.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type AbilitySlot struct {
	Slot     int           `json:"slot"`
	IsHidden bool          `json:"is_hidden"`
	Ability  NamedResource `json:"ability"`
}

type ArtworkSprites struct {
	FrontDefault *string `json:"front_default,omitempty"`
}

type OtherSprites struct {
	OfficialArtwork *ArtworkSprites `json:"official-artwork,omitempty"`
}

type Sprites struct {
	FrontDefault *string       `json:"front_default,omitempty"`
	Other        *OtherSprites `json:"other,omitempty"`
}

// Pokemon holds the fields of /pokemon/{id|name} this service consumes.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Types          []TypeSlot    `json:"types"`
	Abilities      []AbilitySlot `json:"abilities"`
	Height         int           `json:"height"` // decimetres
	Weight         int           `json:"weight"` // hectograms
	BaseExperience *int          `json:"base_experience"`
	Sprites        Sprites       `json:"sprites"`
}

// TypeNames returns type names in slot order.
func (p *Pokemon) TypeNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Types))
	for _, slot := range p.Types {
		names = append(names, slot.Type.Name)
	}
	return names
}

func (p *Pokemon) AbilityNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Abilities))
	for _, slot := range p.Abilities {
		names = append(names, slot.Ability.Name)
	}
	return names
}

// PrimaryType returns the first type name, or "normal" when none is listed.
func (p *Pokemon) PrimaryType() string {
	if p == nil || len(p.Types) == 0 || p.Types[0].Type.Name == "" {
		return util.DefaultTypeToken
	}
	return p.Types[0].Type.Name
}

// SpriteURL resolves official artwork, then the default sprite, then fallback.
func (p *Pokemon) SpriteURL(fallback string) string {
	if p == nil {
		return fallback
	}
	if other := p.Sprites.Other; other != nil && other.OfficialArtwork != nil {
		if art := other.OfficialArtwork.FrontDefault; art != nil && *art != "" {
			return *art
		}
	}
	if front := p.Sprites.FrontDefault; front != nil && *front != "" {
		return *front
	}
	return fallback
}

type TypeMember struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// TypeListing is the /type/{name} payload reduced to its member list.
type TypeListing struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Pokemon []TypeMember `json:"pokemon"`
}

// MemberNames returns member names in listing order.
func (t *TypeListing) MemberNames() []string {
	if t == nil {
		return []string{}
	}
	names := make([]string, 0, len(t.Pokemon))
	for _, member := range t.Pokemon {
		if member.Pokemon.Name != "" {
			names = append(names, member.Pokemon.Name)
		}
	}
	return names
}
