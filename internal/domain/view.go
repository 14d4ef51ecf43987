package domain

// TypeBadge is one rendered type pill.
type TypeBadge struct {
	Label string
	Class string
}

// DetailView is the state of the single-result panel.
type DetailView struct {
	Empty       bool
	Placeholder string

	ID             int
	Name           string
	Theme          string
	Types          []TypeBadge
	ImageURL       string
	Height         string
	Weight         string
	BaseExperience string
	Abilities      string
}

// CardView is one summary card in the collection grid.
type CardView struct {
	ID       int
	Name     string
	Theme    string
	Types    []TypeBadge
	ImageURL string
}

// GridView is the state of the collection panel. A nil or empty Cards slice
// renders Placeholder instead.
type GridView struct {
	Cards       []CardView
	Placeholder string
}

func (g GridView) IsEmpty() bool {
	return len(g.Cards) == 0
}
