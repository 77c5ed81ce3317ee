package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/wricardo/theseus-maze/game/console"
	"github.com/wricardo/theseus-maze/game/engine"
)

// Model is the bubbletea model wrapping a game
type Model struct {
	game     engine.Engine
	styles   console.Styles
	keys     keyMap
	help     help.Model
	logger   *zap.Logger
	status   engine.Status
	message  string
	quitting bool
}

// New creates a model for game
func New(game engine.Engine, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		game:   game,
		styles: console.DefaultStyles(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: logger,
		status: game.Status(),
	}
}

// Status returns the game status as last seen by the model
func (m Model) Status() engine.Status {
	return m.status
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.status.Over() {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(keyMsg, m.keys.Quit) {
		m.logger.Info("game abandoned", zap.Int("turns", m.game.Turns()))
		m.quitting = true
		return m, tea.Quit
	}

	cmd, ok := m.keys.commandFor(keyMsg)
	if !ok {
		return m, nil
	}

	status, err := m.game.Turn(cmd)
	if errors.Is(err, engine.ErrOutOfBounds) {
		m.message = "You cannot leave the board."
		return m, nil
	}
	if err != nil {
		m.logger.Error("turn failed", zap.Error(err))
		m.message = err.Error()
		return m, nil
	}

	m.status = status
	m.message = ""
	m.logger.Debug("turn played",
		zap.Int("turn", m.game.Turns()),
		zap.Stringer("command", cmd),
		zap.Stringer("status", status),
	)
	if status.Over() {
		m.logger.Info("game over", zap.Stringer("status", status), zap.Int("turns", m.game.Turns()))
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	for _, line := range m.styles.StyleBoard(m.game) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	status := fmt.Sprintf("Turn %d  %s", m.game.Turns(), console.StatusMessage(m.status))
	b.WriteString(m.styles.Status.Render(status))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(m.message)
		b.WriteString("\n")
	}

	switch {
	case m.quitting:
	case m.status.Over():
		b.WriteString("press any key to exit\n")
	default:
		b.WriteString(m.help.View(m.keys))
		b.WriteString("\n")
	}
	return b.String()
}

// Run plays game until it is decided or the player quits, returning the
// final status
func Run(ctx context.Context, game engine.Engine, logger *zap.Logger, opts ...tea.ProgramOption) (engine.Status, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(New(game, logger), opts...)

	final, err := program.Run()
	if err != nil {
		return game.Status(), fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Status(), nil
	}
	return game.Status(), nil
}
