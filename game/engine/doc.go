// Package engine provides the core game logic for Theseus and the Minotaur.
//
// The engine package implements the game mechanics including:
//   - Board parsing and marker validation
//   - Grid queries and in-place relocation of markers
//   - Player movement with wall collision
//   - The Minotaur's greedy pursuit
//   - Win/lose evaluation
//
// Core Types:
//
// Grid stores the board as rows of Tile values. Game owns a Grid together
// with the cached positions of Theseus, the Minotaur and the Goal, and
// implements the Engine interface used by the console and TUI front ends.
//
// Usage:
//
//	game, err := engine.FromBoard("XXXXXX\nXT MGX\nXXXXXX")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	status, err := game.Turn(engine.Right)
//	game.Show()
//
// Board Format:
//
// Rows are separated by newlines and may have different lengths. 'X' is a
// wall, ' ' is floor, 'T' is Theseus, 'M' is the Minotaur and 'G' is the
// goal. Exactly one of each marker is required.
//
// Game Rules:
//
// Each turn Theseus moves one cell (or skips), then the Minotaur takes one
// step toward Theseus. The Minotaur closes the column distance first and
// only uses the row axis when the columns match or its column step is
// blocked. Reaching the goal wins; sharing a cell with the Minotaur loses.
// Win is checked first.
package engine
