package console

import (
	"bufio"
	"io"

	"github.com/wricardo/theseus-maze/game/engine"
)

var commandTokens = map[string]engine.Command{
	"w":     engine.Up,
	"up":    engine.Up,
	"s":     engine.Down,
	"down":  engine.Down,
	"a":     engine.Left,
	"left":  engine.Left,
	"d":     engine.Right,
	"right": engine.Right,
}

var quitTokens = map[string]bool{
	"q":    true,
	"quit": true,
}

// ParseCommand maps an input line to a command. Unknown tokens map to Skip.
func ParseCommand(token string) engine.Command {
	if cmd, ok := commandTokens[token]; ok {
		return cmd
	}
	return engine.Skip
}

// IsQuit reports whether the line asks to stop playing
func IsQuit(token string) bool {
	return quitTokens[token]
}

// Input reads one command per line
type Input struct {
	scanner *bufio.Scanner
}

// NewInput wraps r in a line reader
func NewInput(r io.Reader) *Input {
	return &Input{scanner: bufio.NewScanner(r)}
}

// Next reads the next line. It returns io.EOF once the input is exhausted.
func (in *Input) Next() (cmd engine.Command, quit bool, err error) {
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return engine.Skip, false, err
		}
		return engine.Skip, false, io.EOF
	}
	line := in.scanner.Text()
	if IsQuit(line) {
		return engine.Skip, true, nil
	}
	return ParseCommand(line), false, nil
}
