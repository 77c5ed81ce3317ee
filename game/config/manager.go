package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"go.uber.org/zap"
)

//go:embed boards
var embeddedBoards embed.FS

var (
	ErrBoardNotFound = errors.New("board not found")
	ErrInvalidBoard  = errors.New("invalid board")
)

// BoardInfo summarizes a board for listings
type BoardInfo struct {
	Filename    string `json:"filename"`
	BoardID     string `json:"board_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Width       int    `json:"width"`
}

// Manager handles board loading and caching
type Manager struct {
	fsys         fs.FS
	source       string
	boards       map[string]*BoardConfig
	defaultBoard *BoardConfig
	logger       *zap.Logger
}

// NewManager creates a board manager reading from a directory
func NewManager(dir string, logger *zap.Logger) (*Manager, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("boards directory does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("boards path is not a directory: %s", dir)
	}
	return newManager(os.DirFS(dir), dir, logger), nil
}

// NewEmbeddedManager creates a board manager over the boards built into the binary
func NewEmbeddedManager(logger *zap.Logger) *Manager {
	sub, err := fs.Sub(embeddedBoards, "boards")
	if err != nil {
		// the embed directive guarantees the directory
		panic(err)
	}
	return newManager(sub, "embedded", logger)
}

func newManager(fsys fs.FS, source string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		fsys:   fsys,
		source: source,
		boards: make(map[string]*BoardConfig),
		logger: logger.With(zap.String("boards", source)),
	}
	m.loadDefaultBoard()
	return m
}

// Source describes where boards are read from
func (m *Manager) Source() string {
	return m.source
}

// LoadBoard loads a board by id. The id is a file name with or without
// its extension; without one each supported extension is tried in turn.
func (m *Manager) LoadBoard(name string) (*BoardConfig, error) {
	if board, exists := m.boards[name]; exists {
		return board, nil
	}

	filename, data, err := m.readBoardFile(name)
	if err != nil {
		return nil, err
	}

	board, err := DecodeBoard(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	if err := ValidateBoardConfig(board); err != nil {
		return nil, err
	}

	m.logger.Debug("loaded board", zap.String("id", name), zap.String("file", filename))
	m.boards[name] = board
	return board, nil
}

// readBoardFile finds the file backing a board id
func (m *Manager) readBoardFile(name string) (string, []byte, error) {
	candidates := []string{name}
	if !hasBoardExtension(name) {
		candidates = candidates[:0]
		for _, ext := range boardExtensions {
			candidates = append(candidates, name+ext)
		}
	}

	for _, filename := range candidates {
		data, err := fs.ReadFile(m.fsys, filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("failed to read board file: %w", err)
		}
		return filename, data, nil
	}

	return "", nil, fmt.Errorf("%w: %s", ErrBoardNotFound, name)
}

// ListBoards returns information about all valid boards. Invalid files are
// skipped and logged.
func (m *Manager) ListBoards() ([]*BoardInfo, error) {
	entries, err := fs.ReadDir(m.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read boards directory: %w", err)
	}

	var boards []*BoardInfo
	for _, entry := range entries {
		if entry.IsDir() || !hasBoardExtension(entry.Name()) {
			continue
		}

		board, err := m.LoadBoard(entry.Name())
		if err != nil {
			m.logger.Warn("skipping board", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}

		game, err := board.NewGame()
		if err != nil {
			continue
		}

		boards = append(boards, &BoardInfo{
			Filename:    entry.Name(),
			BoardID:     strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())),
			Name:        board.Name,
			Description: board.Description,
			Rows:        game.Grid().Rows(),
			Width:       game.Grid().Width(),
		})
	}

	return boards, nil
}

// GetDefault returns the default board
func (m *Manager) GetDefault() *BoardConfig {
	return m.defaultBoard
}

// SetDefault sets the default board by id
func (m *Manager) SetDefault(name string) error {
	board, err := m.LoadBoard(name)
	if err != nil {
		return err
	}
	m.defaultBoard = board
	return nil
}

// RefreshCache drops cached boards so the next load reads from disk again
func (m *Manager) RefreshCache() {
	m.boards = make(map[string]*BoardConfig)
	m.loadDefaultBoard()
}

// loadDefaultBoard picks classic, then the first valid board, then the
// minimal built-in board
func (m *Manager) loadDefaultBoard() {
	board, err := m.LoadBoard("classic")
	if err == nil {
		m.defaultBoard = board
		return
	}

	boards, listErr := m.ListBoards()
	if listErr == nil && len(boards) > 0 {
		if board, err = m.LoadBoard(boards[0].Filename); err == nil {
			m.defaultBoard = board
			return
		}
	}

	m.logger.Debug("no boards found, using minimal board")
	m.defaultBoard = createMinimalBoard()
}

// createMinimalBoard creates a minimal valid board
func createMinimalBoard() *BoardConfig {
	return &BoardConfig{
		Name:        "default",
		Description: "Minimal built-in board",
		Layout: []string{
			"XXXXXXX",
			"XT  M X",
			"X XXX X",
			"X    GX",
			"XXXXXXX",
		},
	}
}

func hasBoardExtension(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, known := range boardExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
