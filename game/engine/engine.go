package engine

import (
	"fmt"
	"io"
	"os"
)

// Engine provides the operations a front end needs to run a game
type Engine interface {
	// Turn handling
	TheseusMove(cmd Command) error
	MinotaurMove() bool
	Turn(cmd Command) (Status, error)
	Status() Status
	Turns() int

	// Positions
	Theseus() Position
	Minotaur() Position
	Goal() Position

	// Rendering
	Lines() []string
	Render(w io.Writer) error
}

// Game holds the board and the cached marker positions.
//
// The cached positions answer "where is X"; the grid answers whether a cell
// is a wall. relocate is the only code path that moves a marker and it
// updates both together.
type Game struct {
	grid     *Grid
	theseus  Position
	minotaur Position
	goal     Position
	turns    int
}

var _ Engine = (*Game)(nil)

// Grid returns the underlying grid
func (g *Game) Grid() *Grid {
	return g.grid
}

// Theseus returns the cached Theseus position
func (g *Game) Theseus() Position {
	return g.theseus
}

// Minotaur returns the cached Minotaur position
func (g *Game) Minotaur() Position {
	return g.minotaur
}

// Goal returns the goal position
func (g *Game) Goal() Position {
	return g.goal
}

// Turns returns the number of completed turns
func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) IsWall(row, col int) bool     { return g.grid.IsWall(row, col) }
func (g *Game) IsEmpty(row, col int) bool    { return g.grid.IsEmpty(row, col) }
func (g *Game) IsTheseus(row, col int) bool  { return g.grid.IsTheseus(row, col) }
func (g *Game) IsMinotaur(row, col int) bool { return g.grid.IsMinotaur(row, col) }
func (g *Game) IsGoal(row, col int) bool     { return g.grid.IsGoal(row, col) }

// Status evaluates the cached positions. Win takes precedence over Lose.
func (g *Game) Status() Status {
	if g.theseus == g.goal {
		return Win
	}
	if g.theseus == g.minotaur {
		return Lose
	}
	return Continue
}

// Lines returns the rendered board rows
func (g *Game) Lines() []string {
	return g.grid.Lines()
}

// Render writes the board to w, one row per line, walls as WallGlyph
func (g *Game) Render(w io.Writer) error {
	for _, line := range g.grid.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Show prints the board to standard output
func (g *Game) Show() {
	_ = g.Render(os.Stdout)
}

// Clone returns an independent copy of the game
func (g *Game) Clone() *Game {
	clone := *g
	clone.grid = g.grid.Clone()
	return &clone
}

// relocate moves a marker on the grid and in the cache in one step.
// Leaving the goal cell puts the goal marker back.
func (g *Game) relocate(symbol Tile, pos *Position, to Position) {
	from := *pos
	g.grid.Relocate(symbol, from, to)
	*pos = to
	if from == g.goal && to != g.goal {
		g.grid.set(g.goal, Goal)
	}
}
