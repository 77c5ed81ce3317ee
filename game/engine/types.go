package engine

// Tile is a single board symbol
type Tile rune

const (
	Wall     Tile = 'X'
	Empty    Tile = ' '
	Theseus  Tile = 'T'
	Minotaur Tile = 'M'
	Goal     Tile = 'G'

	// WallGlyph replaces Wall when a board is rendered
	WallGlyph = '█'

	// Limits applied by the board catalog
	MaxBoardRows = 100
	MaxBoardCols = 100
)

// Known reports whether t belongs to the board alphabet
func (t Tile) Known() bool {
	switch t {
	case Wall, Empty, Theseus, Minotaur, Goal:
		return true
	}
	return false
}

// IsMarker reports whether t is one of the three unique markers
func (t Tile) IsMarker() bool {
	return t == Theseus || t == Minotaur || t == Goal
}

// Glyph returns the rune used when rendering t
func (t Tile) Glyph() rune {
	if t == Wall {
		return WallGlyph
	}
	return rune(t)
}

// Position is a row/column coordinate on the board
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Offset returns p shifted by the given deltas
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Command is a player instruction for one turn. The zero value is Skip.
type Command int

const (
	Skip Command = iota
	Up
	Down
	Left
	Right
)

// Delta returns the unit (row, col) offset of the command
func (c Command) Delta() (dRow, dCol int) {
	switch c {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "skip"
}

// Status is the outcome of the game after a turn
type Status int

const (
	Continue Status = iota
	Win
	Lose
)

func (s Status) String() string {
	switch s {
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "continue"
}

// Over reports whether the game has ended
func (s Status) Over() bool {
	return s != Continue
}
