package engine

import (
	"fmt"
	"strings"
)

type parseOptions struct {
	strict  bool
	maxRows int
	maxCols int
}

// ParseOption tunes how FromBoard treats the board text
type ParseOption func(*parseOptions)

// WithStrictAlphabet rejects runes other than the five board symbols.
// Without it unknown runes are kept verbatim and behave like floor.
func WithStrictAlphabet() ParseOption {
	return func(o *parseOptions) {
		o.strict = true
	}
}

// WithMaxSize rejects boards with more than rows rows or any row longer than cols
func WithMaxSize(rows, cols int) ParseOption {
	return func(o *parseOptions) {
		o.maxRows = rows
		o.maxCols = cols
	}
}

// FromBoard parses newline separated rows into a Game.
//
// A second occurrence of a marker fails immediately with the matching
// ErrMultiple* error. Missing markers are reported after the scan, Theseus
// first, then Minotaur, then Goal.
func FromBoard(text string, opts ...ParseOption) (*Game, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	lines := splitLines(text)
	if o.maxRows > 0 && len(lines) > o.maxRows {
		return nil, fmt.Errorf("%w: %d rows exceeds limit of %d", ErrInvalidSize, len(lines), o.maxRows)
	}

	rows := make([][]Tile, 0, len(lines))
	markers := make(map[Tile]Position, 3)

	for r, line := range lines {
		runes := []rune(line)
		if o.maxCols > 0 && len(runes) > o.maxCols {
			return nil, fmt.Errorf("%w: row %d has %d columns, limit is %d", ErrInvalidSize, r, len(runes), o.maxCols)
		}

		row := make([]Tile, len(runes))
		for c, ch := range runes {
			t := Tile(ch)
			if o.strict && !t.Known() {
				return nil, &CharacterError{Char: ch, Row: r, Col: c}
			}
			if t.IsMarker() {
				if _, seen := markers[t]; seen {
					return nil, fmt.Errorf("%w at row %d, col %d", duplicateError(t), r, c)
				}
				markers[t] = Position{Row: r, Col: c}
			}
			row[c] = t
		}
		rows = append(rows, row)
	}

	theseus, ok := markers[Theseus]
	if !ok {
		return nil, ErrNoTheseus
	}
	minotaur, ok := markers[Minotaur]
	if !ok {
		return nil, ErrNoMinotaur
	}
	goal, ok := markers[Goal]
	if !ok {
		return nil, ErrNoGoal
	}

	return &Game{
		grid:     NewGrid(rows),
		theseus:  theseus,
		minotaur: minotaur,
		goal:     goal,
	}, nil
}

// FromLayout parses a board given as one string per row
func FromLayout(layout []string, opts ...ParseOption) (*Game, error) {
	return FromBoard(strings.Join(layout, "\n"), opts...)
}

// splitLines splits on '\n', strips a trailing '\r' from each line and drops
// the empty line produced by a final newline
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
