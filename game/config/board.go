package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/theseus-maze/game/engine"
)

// boardExtensions lists the supported board file formats in lookup order
var boardExtensions = []string{".json", ".yaml", ".yml", ".txt"}

// BoardConfig describes a board as stored in a board file
type BoardConfig struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Layout      []string `json:"layout" yaml:"layout"`
}

// Text returns the layout as newline separated board text
func (c *BoardConfig) Text() string {
	return strings.Join(c.Layout, "\n")
}

// NewGame parses the layout with the catalog's strict rules
func (c *BoardConfig) NewGame() (*engine.Game, error) {
	return engine.FromLayout(c.Layout, catalogParseOptions()...)
}

func catalogParseOptions() []engine.ParseOption {
	return []engine.ParseOption{
		engine.WithStrictAlphabet(),
		engine.WithMaxSize(engine.MaxBoardRows, engine.MaxBoardCols),
	}
}

// ValidateBoardConfig checks required fields and that the layout parses
// under the strict alphabet and size limits
func ValidateBoardConfig(c *BoardConfig) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBoard)
	}
	if len(c.Layout) == 0 {
		return fmt.Errorf("%w: layout is empty", ErrInvalidBoard)
	}
	if _, err := c.NewGame(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	return nil
}

// DecodeBoard decodes board file contents according to the file extension.
// Plain text boards take their name from the file name.
func DecodeBoard(filename string, data []byte) (*BoardConfig, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var board BoardConfig
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &board); err != nil {
			return nil, fmt.Errorf("failed to parse board: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &board); err != nil {
			return nil, fmt.Errorf("failed to parse board: %w", err)
		}
	case ".txt":
		board.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
		board.Layout = strings.Split(text, "\n")
	default:
		return nil, fmt.Errorf("unsupported board format %q", ext)
	}

	return &board, nil
}

// LoadFile reads, decodes and validates a board file from disk
func LoadFile(path string) (*BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	board, err := DecodeBoard(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}
	if err := ValidateBoardConfig(board); err != nil {
		return nil, err
	}
	return board, nil
}

// ValidationResult captures the outcome of validating a single file.
// Warnings do not make a board invalid.
type ValidationResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateFile loads and validates a board file from disk. Boards that are
// not enclosed by walls are valid but get a warning, since moving off them
// is reported as an out of bounds error during play.
func ValidateFile(path string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(path),
		Valid: true,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	board, err := DecodeBoard(path, data)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if err := ValidateBoardConfig(board); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	game, _ := board.NewGame()
	if edges := engine.OpenEdges(game.Grid()); len(edges) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Board is not enclosed: %d open cells touch the edge, first at (%d,%d)",
				len(edges), edges[0].Row, edges[0].Col))
	}

	return result
}
