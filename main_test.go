package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/wricardo/theseus-maze/game/config"
)

const (
	winInOneBoard = "XXXXXX\nXTG  X\nX   MX\nXXXXXX"
	openBoard     = "TM G"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(strings.NewReader(input), &out).Run(context.Background(), append([]string{AppName}, args...))
	return out.String(), err
}

func writeBoard(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "1.0.0", Version)
	assert.Equal(t, "theseus", AppName)
}

func TestVersionFlag(t *testing.T) {
	out, err := runApp(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = newLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestPlay_DefaultBoardQuit(t *testing.T) {
	out, err := runApp(t, "q\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Classic\n\n"), out)
	assert.Contains(t, out, "Game abandoned.")
}

func TestPlay_File(t *testing.T) {
	path := writeBoard(t, t.TempDir(), "short.txt", winInOneBoard)

	out, err := runApp(t, "d\n", "play", "--file", path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "short\n\n"))
	assert.Contains(t, out, "You escaped the labyrinth!")
}

func TestPlay_Color(t *testing.T) {
	path := writeBoard(t, t.TempDir(), "short.txt", winInOneBoard)

	out, err := runApp(t, "d\n", "play", "--color", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "You escaped the labyrinth!")
}

func TestPlay_CatalogBoard(t *testing.T) {
	out, err := runApp(t, "", "play", "--board", "corridor")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "corridor\n\n"))
}

func TestPlay_Errors(t *testing.T) {
	_, err := runApp(t, "", "play", "--board", "missing")
	assert.ErrorIs(t, err, config.ErrBoardNotFound)

	path := writeBoard(t, t.TempDir(), "bad.txt", "XXXX\nXTMX\nXXXX")
	_, err = runApp(t, "", "play", "--file", path)
	assert.ErrorIs(t, err, config.ErrInvalidBoard)

	_, err = runApp(t, "", "--boards-dir", "/non/existent/path", "play")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := runApp(t, "", "list")
	require.NoError(t, err)

	for _, id := range []string{"classic", "corridor", "spiral"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "3 boards (embedded)")
}

func TestList_BoardsDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	writeBoard(t, dir, "mine.txt", winInOneBoard)
	t.Setenv(envBoardsDir, dir)

	out, err := runApp(t, "", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "mine")
	assert.Contains(t, out, "6x4")
	assert.NotContains(t, out, "corridor")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeBoard(t, dir, "good.txt", winInOneBoard)
	open := writeBoard(t, dir, "open.txt", openBoard)
	bad := writeBoard(t, dir, "bad.txt", "XXXXX\nXTTMG\nXXXXX")

	out, err := runApp(t, "", "validate", good, open)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ VALID")
	assert.Contains(t, out, "not enclosed")
	assert.Contains(t, out, "All boards are valid")

	out, err = runApp(t, "", "validate", good, bad)
	assert.ErrorIs(t, err, errInvalidBoards)
	assert.Contains(t, out, "❌ INVALID")
	assert.Contains(t, out, "multiple theseus")

	_, err = runApp(t, "", "validate")
	assert.ErrorIs(t, err, errNoFiles)
}

func TestAnalyze(t *testing.T) {
	out, err := runApp(t, "", "analyze", "classic")
	require.NoError(t, err)

	assert.Contains(t, out, "=== Analyzing classic ===")
	assert.Contains(t, out, "Name: Classic")
	assert.Contains(t, out, "Board is enclosed by walls")
}

func TestAnalyze_OpenBoard(t *testing.T) {
	dir := t.TempDir()
	writeBoard(t, dir, "open.txt", openBoard)

	out, err := runApp(t, "", "--boards-dir", dir, "analyze")
	require.NoError(t, err)

	assert.Contains(t, out, "=== Analyzing open ===")
	assert.Contains(t, out, "WARNING: 4 open cells")
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := runApp(t, "", "analyze", "--json")
	require.NoError(t, err)

	var analyses []boardAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &analyses))
	require.Len(t, analyses, 3)
	for _, a := range analyses {
		assert.True(t, a.Enclosed, a.Board)
		assert.NotEmpty(t, a.Name)
		assert.Positive(t, a.Walls)
	}
}

func TestAnalyze_UnknownBoard(t *testing.T) {
	_, err := runApp(t, "", "analyze", "missing")
	assert.ErrorIs(t, err, config.ErrBoardNotFound)
}

func TestRules(t *testing.T) {
	out, err := runApp(t, "", "rules")
	require.NoError(t, err)

	assert.Contains(t, out, "Minotaur")
	assert.Contains(t, out, "Controls")
}
