package adapter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kapu/pokedex-web-go/internal/domain"
)

// typeColors follows the usual in-game palette, keyed by TypeClass token.
var typeColors = map[string]lipgloss.Color{
	"type-normal":   "#A8A77A",
	"type-fire":     "#EE8130",
	"type-water":    "#6390F0",
	"type-electric": "#F7D02C",
	"type-grass":    "#7AC74C",
	"type-ice":      "#96D9D6",
	"type-fighting": "#C22E28",
	"type-poison":   "#A33EA1",
	"type-ground":   "#E2BF65",
	"type-flying":   "#A98FF3",
	"type-psychic":  "#F95587",
	"type-bug":      "#A6B91A",
	"type-rock":     "#B6A136",
	"type-ghost":    "#735797",
	"type-dragon":   "#6F35FC",
	"type-dark":     "#705746",
	"type-steel":    "#B7B7CE",
	"type-fairy":    "#D685AD",
}

var toneColors = map[domain.Tone]lipgloss.Color{
	domain.ToneInfo:  "#6390F0",
	domain.ToneOK:    "#7AC74C",
	domain.ToneError: "#C22E28",
}

// TerminalRenderer draws the panels for the CLI.
type TerminalRenderer struct {
	cardWidth int
	perRow    int
}

func NewTerminalRenderer(cardWidth, perRow int) *TerminalRenderer {
	if cardWidth <= 0 {
		cardWidth = 28
	}
	if perRow <= 0 {
		perRow = 3
	}
	return &TerminalRenderer{cardWidth: cardWidth, perRow: perRow}
}

func colorFor(class string) lipgloss.Color {
	if c, ok := typeColors[class]; ok {
		return c
	}
	return typeColors["type-normal"]
}

func (r *TerminalRenderer) cardStyle(theme string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorFor(theme)).
		Padding(0, 1).
		Width(r.cardWidth)
}

func (r *TerminalRenderer) badges(types []domain.TypeBadge) string {
	pills := make([]string, 0, len(types))
	for _, badge := range types {
		pills = append(pills, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorFor(badge.Class)).
			Padding(0, 1).
			Render(badge.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pills...)
}

func (r *TerminalRenderer) header(id int, name string, types []domain.TypeBadge) string {
	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("#%d %s", id, name))
	return lipgloss.JoinVertical(lipgloss.Left, title, r.badges(types))
}

func (r *TerminalRenderer) placeholder(text string) string {
	return lipgloss.NewStyle().Italic(true).Faint(true).Render(text)
}

func (r *TerminalRenderer) RenderDetail(view domain.DetailView) string {
	if view.Empty {
		return r.placeholder(view.Placeholder)
	}

	label := lipgloss.NewStyle().Faint(true).Width(11)
	rows := []string{
		r.header(view.ID, view.Name, view.Types),
		"",
		label.Render("Height") + view.Height,
		label.Render("Weight") + view.Weight,
		label.Render("Base XP") + view.BaseExperience,
		label.Render("Abilities") + view.Abilities,
		label.Render("Image") + view.ImageURL,
	}
	return r.cardStyle(view.Theme).Render(strings.Join(rows, "\n"))
}

func (r *TerminalRenderer) RenderGrid(view domain.GridView) string {
	if view.IsEmpty() {
		return r.placeholder(view.Placeholder)
	}

	var lines []string
	row := make([]string, 0, r.perRow)
	for _, card := range view.Cards {
		row = append(row, r.cardStyle(card.Theme).Render(r.header(card.ID, card.Name, card.Types)))
		if len(row) == r.perRow {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *TerminalRenderer) RenderStatus(status domain.Status) string {
	if !status.Visible() {
		return ""
	}
	color, ok := toneColors[status.Tone]
	if !ok {
		color = toneColors[domain.ToneInfo]
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(status.Message)
}
