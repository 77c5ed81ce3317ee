package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBoard_MinimalBoard(t *testing.T) {
	game, err := FromBoard("TM G")
	require.NoError(t, err)

	assert.Equal(t, Position{Row: 0, Col: 0}, game.Theseus())
	assert.Equal(t, Position{Row: 0, Col: 1}, game.Minotaur())
	assert.Equal(t, Position{Row: 0, Col: 3}, game.Goal())
	assert.True(t, game.IsEmpty(0, 2))
	assert.Equal(t, Continue, game.Status())
}

func TestFromBoard_MultiRow(t *testing.T) {
	game, err := FromBoard("T\nM\n G")
	require.NoError(t, err)

	assert.Equal(t, Position{Row: 0, Col: 0}, game.Theseus())
	assert.Equal(t, Position{Row: 1, Col: 0}, game.Minotaur())
	assert.Equal(t, Position{Row: 2, Col: 1}, game.Goal())
}

func TestFromBoard_Errors(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected error
	}{
		{"empty board", "", ErrNoTheseus},
		{"no theseus", "M G", ErrNoTheseus},
		{"no minotaur", "T G", ErrNoMinotaur},
		{"no goal", "TM ", ErrNoGoal},
		{"only goal reports theseus first", "G", ErrNoTheseus},
		{"two theseus", "TTMG", ErrMultipleTheseus},
		{"two minotaur", "TMMG", ErrMultipleMinotaur},
		{"two goal", "TMGG", ErrMultipleGoal},
		{"two theseus on separate rows", "T M\nG T", ErrMultipleTheseus},
		{"first duplicate wins", "GTG\nTM", ErrMultipleGoal},
		{"duplicate beats missing", "TT", ErrMultipleTheseus},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, err := FromBoard(test.board)
			assert.Nil(t, game)
			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestFromBoard_DuplicateKindsAreDistinct(t *testing.T) {
	_, errT := FromBoard("TTMG")
	_, errM := FromBoard("TMMG")
	_, errG := FromBoard("TMGG")

	assert.False(t, errors.Is(errT, ErrMultipleMinotaur))
	assert.False(t, errors.Is(errM, ErrMultipleTheseus))
	assert.False(t, errors.Is(errG, ErrMultipleTheseus))
	assert.Contains(t, errM.Error(), "row 0, col 2")
}

func TestFromBoard_LenientAlphabet(t *testing.T) {
	game, err := FromBoard("T?MG")
	require.NoError(t, err)

	assert.Equal(t, Tile('?'), game.Grid().At(0, 1))
	assert.False(t, game.IsWall(0, 1))
	assert.False(t, game.IsEmpty(0, 1))

	// unknown runes behave like floor
	require.NoError(t, game.TheseusMove(Right))
	assert.Equal(t, Position{Row: 0, Col: 1}, game.Theseus())
}

func TestFromBoard_StrictAlphabet(t *testing.T) {
	_, err := FromBoard("XXXX\nXT?MGX", WithStrictAlphabet())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCharacter)

	var charErr *CharacterError
	require.True(t, errors.As(err, &charErr))
	assert.Equal(t, '?', charErr.Char)
	assert.Equal(t, 1, charErr.Row)
	assert.Equal(t, 2, charErr.Col)

	_, err = FromBoard("XXXX\nXTMG\nXXXX", WithStrictAlphabet())
	assert.NoError(t, err)
}

func TestFromBoard_MaxSize(t *testing.T) {
	_, err := FromBoard("T\nM\nG", WithMaxSize(2, 10))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = FromBoard("TM G", WithMaxSize(10, 3))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = FromBoard("TM G", WithMaxSize(1, 4))
	assert.NoError(t, err)
}

func TestFromBoard_LineEndings(t *testing.T) {
	game, err := FromBoard("XXXXX\r\nXTMGX\r\nXXXXX\r\n")
	require.NoError(t, err)

	assert.Equal(t, 3, game.Grid().Rows())
	assert.Equal(t, 5, game.Grid().RowLen(1))
	assert.Equal(t, Position{Row: 1, Col: 3}, game.Goal())
}

func TestFromBoard_IrregularRows(t *testing.T) {
	game, err := FromBoard("XXXXXXX\nXT X\nXM   GX\nXXXXXXX")
	require.NoError(t, err)

	assert.Equal(t, 4, game.Grid().RowLen(1))
	assert.Equal(t, 7, game.Grid().RowLen(2))
	assert.Equal(t, Position{Row: 2, Col: 5}, game.Goal())
}

func TestFromBoard_ColumnsAreRunes(t *testing.T) {
	game, err := FromBoard("TéM G")
	require.NoError(t, err)

	assert.Equal(t, Position{Row: 0, Col: 2}, game.Minotaur())
	assert.Equal(t, Position{Row: 0, Col: 4}, game.Goal())
}

func TestFromLayout(t *testing.T) {
	game, err := FromLayout([]string{"XXXXX", "XTMGX", "XXXXX"}, WithStrictAlphabet())
	require.NoError(t, err)

	assert.Equal(t, Position{Row: 1, Col: 1}, game.Theseus())
}

func TestFromBoard_MarkerUniqueness(t *testing.T) {
	boards := []string{
		"TM G",
		"T\nM\n G",
		testOpenBoard,
		testMazeBoard,
	}

	for _, board := range boards {
		game, err := FromBoard(board)
		require.NoError(t, err)
		assertMarkersConsistent(t, game)
	}
}
