package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidSize      = errors.New("invalid size")
	ErrNoMinotaur       = errors.New("no minotaur")
	ErrNoTheseus        = errors.New("no theseus")
	ErrNoGoal           = errors.New("no goal")
	ErrMultipleMinotaur = errors.New("multiple minotaur")
	ErrMultipleTheseus  = errors.New("multiple theseus")
	ErrMultipleGoal     = errors.New("multiple goal")
	ErrOutOfBounds      = errors.New("out of bounds")
)

// CharacterError reports a rune outside the board alphabet under strict parsing
type CharacterError struct {
	Char rune
	Row  int
	Col  int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%v: %q at row %d, col %d", ErrInvalidCharacter, e.Char, e.Row, e.Col)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// duplicateError maps a marker to its "multiple" error
func duplicateError(t Tile) error {
	switch t {
	case Theseus:
		return ErrMultipleTheseus
	case Minotaur:
		return ErrMultipleMinotaur
	default:
		return ErrMultipleGoal
	}
}
