// Package config provides the board catalog for Theseus and the Minotaur.
//
// The config package handles:
//   - Loading boards from a directory or from the boards built into the binary
//   - Board validation under the strict alphabet and size limits
//   - Default board selection
//   - Board discovery and listing
//
// Board Format:
//
// Boards are stored as files in a boards directory. Three formats are
// accepted:
//   - .json and .yaml/.yml files with name, description and a layout array
//   - .txt files holding raw board text, named after the file
//
// Usage:
//
//	manager, err := config.NewManager("boards", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	board, err := manager.LoadBoard("classic")
//	game, err := board.NewGame()
//
//	// List available boards
//	boards, err := manager.ListBoards()
//
// Validation:
//
// Every board is checked for:
//   - A name and a non-empty layout
//   - Only the symbols X, space, T, M and G
//   - Exactly one Theseus, one Minotaur and one goal
//   - At most MaxBoardRows rows of at most MaxBoardCols columns
//
// ValidateFile additionally warns about boards that are not enclosed by walls.
package config
