package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileConstants(t *testing.T) {
	tests := []struct {
		tile     Tile
		expected rune
	}{
		{Wall, 'X'},
		{Empty, ' '},
		{Theseus, 'T'},
		{Minotaur, 'M'},
		{Goal, 'G'},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, rune(test.tile))
		assert.True(t, test.tile.Known(), "tile %q should be known", test.tile)
	}
	assert.False(t, Tile('?').Known())
}

func TestTile_IsMarker(t *testing.T) {
	assert.True(t, Theseus.IsMarker())
	assert.True(t, Minotaur.IsMarker())
	assert.True(t, Goal.IsMarker())
	assert.False(t, Wall.IsMarker())
	assert.False(t, Empty.IsMarker())
}

func TestTile_Glyph(t *testing.T) {
	assert.Equal(t, '█', Wall.Glyph())
	assert.Equal(t, 'T', Theseus.Glyph())
	assert.Equal(t, '~', Tile('~').Glyph())
}

func TestCommand_Delta(t *testing.T) {
	tests := []struct {
		cmd        Command
		dRow, dCol int
		name       string
	}{
		{Up, -1, 0, "up"},
		{Down, 1, 0, "down"},
		{Left, 0, -1, "left"},
		{Right, 0, 1, "right"},
		{Skip, 0, 0, "skip"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dRow, dCol := test.cmd.Delta()
			assert.Equal(t, test.dRow, dRow)
			assert.Equal(t, test.dCol, dCol)
			assert.Equal(t, test.name, test.cmd.String())
		})
	}
}

func TestCommand_ZeroValueIsSkip(t *testing.T) {
	var cmd Command
	assert.Equal(t, Skip, cmd)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "continue", Continue.String())
	assert.Equal(t, "win", Win.String())
	assert.Equal(t, "lose", Lose.String())
	assert.False(t, Continue.Over())
	assert.True(t, Win.Over())
	assert.True(t, Lose.Over())
}

func TestPositionJSONMarshaling(t *testing.T) {
	pos := Position{Row: 3, Col: 7}

	data, err := json.Marshal(pos)
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":3,"col":7}`, string(data))
	assert.Equal(t, Position{Row: 2, Col: 8}, pos.Offset(-1, 1))
}
