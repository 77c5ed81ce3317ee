package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wricardo/theseus-maze/game/engine"
)

// Renderer draws the board of a game
type Renderer interface {
	Render(w io.Writer, game engine.Engine) error
}

// PlainRenderer prints the board exactly as the engine renders it
type PlainRenderer struct{}

func (PlainRenderer) Render(w io.Writer, game engine.Engine) error {
	return game.Render(w)
}

// Styles holds the lipgloss style for each tile
type Styles struct {
	Wall     lipgloss.Style
	Floor    lipgloss.Style
	Theseus  lipgloss.Style
	Minotaur lipgloss.Style
	Goal     lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the standard color scheme
func DefaultStyles() Styles {
	return Styles{
		Wall:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Floor:    lipgloss.NewStyle(),
		Theseus:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")).Bold(true),
		Minotaur: lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true),
		Goal:     lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
	}
}

// StyleLine colors each cell of a rendered board row
func (s Styles) StyleLine(line string) string {
	var b strings.Builder
	for _, r := range line {
		cell := string(r)
		switch r {
		case engine.WallGlyph:
			cell = s.Wall.Render(cell)
		case rune(engine.Theseus):
			cell = s.Theseus.Render(cell)
		case rune(engine.Minotaur):
			cell = s.Minotaur.Render(cell)
		case rune(engine.Goal):
			cell = s.Goal.Render(cell)
		case rune(engine.Empty):
			cell = s.Floor.Render(cell)
		}
		b.WriteString(cell)
	}
	return b.String()
}

// StyleBoard colors every row of the game board
func (s Styles) StyleBoard(game engine.Engine) []string {
	lines := game.Lines()
	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = s.StyleLine(line)
	}
	return styled
}

// StyledRenderer prints the board with colors
type StyledRenderer struct {
	styles Styles
}

// NewStyledRenderer creates a renderer using DefaultStyles
func NewStyledRenderer() *StyledRenderer {
	return &StyledRenderer{styles: DefaultStyles()}
}

func (r *StyledRenderer) Render(w io.Writer, game engine.Engine) error {
	for _, line := range r.styles.StyleBoard(game) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// StatusMessage describes the outcome shown to the player
func StatusMessage(status engine.Status) string {
	switch status {
	case engine.Win:
		return "You escaped the labyrinth!"
	case engine.Lose:
		return "The Minotaur caught you."
	}
	return "The Minotaur is coming..."
}
