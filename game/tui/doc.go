// Package tui plays Theseus and the Minotaur as a full screen bubbletea
// program.
//
// Arrow keys or w/a/s/d move Theseus, '.' skips a turn and q or ctrl+c
// quits. Other keys are ignored. Once the game is decided any key exits.
//
// Usage:
//
//	status, err := tui.Run(ctx, game, logger)
package tui
