package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/wricardo/theseus-maze/game/engine"
)

const prompt = "> "

// Loop plays a game one turn per input line
type Loop struct {
	game     engine.Engine
	input    *Input
	out      io.Writer
	renderer Renderer
	logger   *zap.Logger
}

// LoopOption configures a Loop
type LoopOption func(*Loop)

// WithRenderer sets how the board is drawn after each turn
func WithRenderer(r Renderer) LoopOption {
	return func(l *Loop) {
		l.renderer = r
	}
}

// WithLogger sets the logger used for turn events
func WithLogger(logger *zap.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoop creates a loop reading commands from in and writing to out
func NewLoop(game engine.Engine, in io.Reader, out io.Writer, opts ...LoopOption) *Loop {
	l := &Loop{
		game:     game,
		input:    NewInput(in),
		out:      out,
		renderer: PlainRenderer{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run shows the board and plays turns until the game is decided, the
// player quits, the input runs out or ctx is cancelled. It returns the
// status at the time it stopped; Continue means the game was abandoned.
func (l *Loop) Run(ctx context.Context) (engine.Status, error) {
	if err := l.renderer.Render(l.out, l.game); err != nil {
		return engine.Continue, fmt.Errorf("failed to render board: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return l.game.Status(), err
		}

		fmt.Fprint(l.out, prompt)
		cmd, quit, err := l.input.Next()
		if errors.Is(err, io.EOF) || quit {
			l.logger.Info("game abandoned", zap.Int("turns", l.game.Turns()))
			fmt.Fprintln(l.out)
			fmt.Fprintln(l.out, "Game abandoned.")
			return engine.Continue, nil
		}
		if err != nil {
			return l.game.Status(), fmt.Errorf("failed to read command: %w", err)
		}

		status, err := l.game.Turn(cmd)
		if errors.Is(err, engine.ErrOutOfBounds) {
			l.logger.Debug("move rejected", zap.Stringer("command", cmd), zap.Error(err))
			fmt.Fprintln(l.out, "You cannot leave the board.")
			continue
		}
		if err != nil {
			return status, err
		}

		theseus, minotaur := l.game.Theseus(), l.game.Minotaur()
		l.logger.Debug("turn played",
			zap.Int("turn", l.game.Turns()),
			zap.Stringer("command", cmd),
			zap.Int("theseus_row", theseus.Row),
			zap.Int("theseus_col", theseus.Col),
			zap.Int("minotaur_row", minotaur.Row),
			zap.Int("minotaur_col", minotaur.Col),
			zap.Stringer("status", status),
		)

		if err := l.renderer.Render(l.out, l.game); err != nil {
			return status, fmt.Errorf("failed to render board: %w", err)
		}

		if status.Over() {
			l.logger.Info("game over", zap.Stringer("status", status), zap.Int("turns", l.game.Turns()))
			fmt.Fprintln(l.out, StatusMessage(status))
			return status, nil
		}
	}
}
