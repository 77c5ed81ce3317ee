package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wricardo/theseus-maze/game/engine"
)

// keyMap holds the bindings shown in the help line
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Skip  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Skip:  key.NewBinding(key.WithKeys("."), key.WithHelp(".", "skip")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// commandFor returns the game command bound to msg
func (k keyMap) commandFor(msg tea.KeyMsg) (engine.Command, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return engine.Up, true
	case key.Matches(msg, k.Down):
		return engine.Down, true
	case key.Matches(msg, k.Left):
		return engine.Left, true
	case key.Matches(msg, k.Right):
		return engine.Right, true
	case key.Matches(msg, k.Skip):
		return engine.Skip, true
	}
	return engine.Skip, false
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Skip, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
