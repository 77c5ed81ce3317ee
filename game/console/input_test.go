package console

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/theseus-maze/game/engine"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		token    string
		expected engine.Command
	}{
		{"w", engine.Up},
		{"up", engine.Up},
		{"s", engine.Down},
		{"down", engine.Down},
		{"a", engine.Left},
		{"left", engine.Left},
		{"d", engine.Right},
		{"right", engine.Right},
		{"", engine.Skip},
		{"W", engine.Skip},
		{" w", engine.Skip},
		{"jump", engine.Skip},
		{"q", engine.Skip},
	}

	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseCommand(test.token))
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit("q"))
	assert.True(t, IsQuit("quit"))
	assert.False(t, IsQuit("Q"))
	assert.False(t, IsQuit("exit"))
}

func TestInput_Next(t *testing.T) {
	in := NewInput(strings.NewReader("w\r\n\nleft\nquit\n"))

	cmd, quit, err := in.Next()
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, engine.Up, cmd)

	cmd, quit, err = in.Next()
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, engine.Skip, cmd, "an empty line skips")

	cmd, _, err = in.Next()
	require.NoError(t, err)
	assert.Equal(t, engine.Left, cmd)

	_, quit, err = in.Next()
	require.NoError(t, err)
	assert.True(t, quit)

	_, _, err = in.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestInput_ReadError(t *testing.T) {
	boom := errors.New("boom")
	in := NewInput(iotest.ErrReader(boom))

	_, _, err := in.Next()
	assert.ErrorIs(t, err, boom)
}
