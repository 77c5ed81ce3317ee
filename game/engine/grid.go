package engine

// Grid stores the board as rows of tiles. Rows may differ in length.
//
// Lookups index the rows directly: asking for a cell outside the grid is a
// caller bug and panics. Use Contains to check first.
type Grid struct {
	rows [][]Tile
}

// NewGrid wraps the given rows without copying them
func NewGrid(rows [][]Tile) *Grid {
	return &Grid{rows: rows}
}

// At returns the tile at row, col
func (g *Grid) At(row, col int) Tile {
	return g.rows[row][col]
}

// Contains reports whether row, col addresses a cell of the grid
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < len(g.rows[row])
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return len(g.rows)
}

// RowLen returns the number of cells in the given row
func (g *Grid) RowLen(row int) int {
	return len(g.rows[row])
}

// Width returns the length of the longest row
func (g *Grid) Width() int {
	width := 0
	for _, row := range g.rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func (g *Grid) IsWall(row, col int) bool     { return g.At(row, col) == Wall }
func (g *Grid) IsEmpty(row, col int) bool    { return g.At(row, col) == Empty }
func (g *Grid) IsTheseus(row, col int) bool  { return g.At(row, col) == Theseus }
func (g *Grid) IsMinotaur(row, col int) bool { return g.At(row, col) == Minotaur }
func (g *Grid) IsGoal(row, col int) bool     { return g.At(row, col) == Goal }

// Relocate empties the source cell and writes symbol into the destination.
// It does not check what either cell held before.
func (g *Grid) Relocate(symbol Tile, from, to Position) {
	g.rows[from.Row][from.Col] = Empty
	g.rows[to.Row][to.Col] = symbol
}

// set overwrites a single cell
func (g *Grid) set(p Position, t Tile) {
	g.rows[p.Row][p.Col] = t
}

// Count returns how many cells hold t
func (g *Grid) Count(t Tile) int {
	count := 0
	for _, row := range g.rows {
		for _, cell := range row {
			if cell == t {
				count++
			}
		}
	}
	return count
}

// Find returns the positions of every cell holding t, in row-major order
func (g *Grid) Find(t Tile) []Position {
	var found []Position
	for r, row := range g.rows {
		for c, cell := range row {
			if cell == t {
				found = append(found, Position{Row: r, Col: c})
			}
		}
	}
	return found
}

// Lines renders each row as a string, substituting WallGlyph for walls
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.rows))
	for i, row := range g.rows {
		runes := make([]rune, len(row))
		for j, cell := range row {
			runes[j] = cell.Glyph()
		}
		lines[i] = string(runes)
	}
	return lines
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	rows := make([][]Tile, len(g.rows))
	for i, row := range g.rows {
		rows[i] = append([]Tile(nil), row...)
	}
	return &Grid{rows: rows}
}
