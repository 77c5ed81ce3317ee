package engine

import "fmt"

// blocked reports whether p cannot be entered: off the grid or a wall
func (g *Game) blocked(p Position) bool {
	return !g.grid.Contains(p.Row, p.Col) || g.grid.IsWall(p.Row, p.Col)
}

// TheseusMove applies a player command.
//
// Skip does nothing. Walking into a wall is a silent no-op. A destination
// outside the grid leaves the game untouched and returns ErrOutOfBounds.
func (g *Game) TheseusMove(cmd Command) error {
	if cmd == Skip {
		return nil
	}

	dRow, dCol := cmd.Delta()
	to := g.theseus.Offset(dRow, dCol)

	if !g.grid.Contains(to.Row, to.Col) {
		return fmt.Errorf("%w: theseus moving %s to (%d,%d)", ErrOutOfBounds, cmd, to.Row, to.Col)
	}
	if g.grid.IsWall(to.Row, to.Col) {
		return nil
	}

	g.relocate(Theseus, &g.theseus, to)
	return nil
}

// MinotaurMove takes one greedy step toward Theseus and reports whether the
// Minotaur moved.
//
// The column axis always goes first. The row axis is only tried when the
// columns already match or the column step is blocked; a successful column
// step ends the turn. Cells off the grid count as blocked.
func (g *Game) MinotaurMove() bool {
	dCol := sign(g.theseus.Col - g.minotaur.Col)
	dRow := sign(g.theseus.Row - g.minotaur.Row)

	if dCol != 0 {
		to := g.minotaur.Offset(0, dCol)
		if !g.blocked(to) {
			g.relocate(Minotaur, &g.minotaur, to)
			return true
		}
	}

	if dRow != 0 {
		to := g.minotaur.Offset(dRow, 0)
		if !g.blocked(to) {
			g.relocate(Minotaur, &g.minotaur, to)
			return true
		}
	}

	return false
}

// Turn plays one full turn: Theseus moves, then the Minotaur, then the
// status is evaluated. An out of bounds command aborts the turn before the
// Minotaur moves.
func (g *Game) Turn(cmd Command) (Status, error) {
	if err := g.TheseusMove(cmd); err != nil {
		return g.Status(), err
	}
	g.MinotaurMove()
	g.turns++
	return g.Status(), nil
}

// PossibleMoves returns the directions Theseus can currently step in
func (g *Game) PossibleMoves() []Command {
	var possible []Command
	for _, cmd := range []Command{Up, Down, Left, Right} {
		dRow, dCol := cmd.Delta()
		if !g.blocked(g.theseus.Offset(dRow, dCol)) {
			possible = append(possible, cmd)
		}
	}
	return possible
}
