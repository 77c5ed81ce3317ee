package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

// Report summarizes a board for the analyze command
type Report struct {
	Rows             int        `json:"rows"`
	Width            int        `json:"width"`
	Walls            int        `json:"walls"`
	Theseus          Position   `json:"theseus"`
	Minotaur         Position   `json:"minotaur"`
	Goal             Position   `json:"goal"`
	GoalDistance     int        `json:"goal_distance"`
	MinotaurDistance int        `json:"minotaur_distance"`
	OpenEdges        []Position `json:"open_edges,omitempty"`
	Enclosed         bool       `json:"enclosed"`
}

// Analyze inspects the current board without changing it
func Analyze(g *Game) Report {
	edges := OpenEdges(g.grid)
	return Report{
		Rows:             g.grid.Rows(),
		Width:            g.grid.Width(),
		Walls:            g.grid.Count(Wall),
		Theseus:          g.theseus,
		Minotaur:         g.minotaur,
		Goal:             g.goal,
		GoalDistance:     ManhattanDistance(g.theseus, g.goal),
		MinotaurDistance: ManhattanDistance(g.minotaur, g.theseus),
		OpenEdges:        edges,
		Enclosed:         len(edges) == 0,
	}
}

// OpenEdges returns the non-wall cells that have a side leaving the grid.
// A board without any is fully enclosed by walls.
func OpenEdges(grid *Grid) []Position {
	var edges []Position
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.RowLen(r); c++ {
			if grid.IsWall(r, c) {
				continue
			}
			if !grid.Contains(r-1, c) || !grid.Contains(r+1, c) ||
				!grid.Contains(r, c-1) || !grid.Contains(r, c+1) {
				edges = append(edges, Position{Row: r, Col: c})
			}
		}
	}
	return edges
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1 following the sign of x
func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
