// Package console runs Theseus and the Minotaur in a terminal, one line of
// input per turn.
//
// Input tokens are matched exactly (case-sensitive):
//
//	w, up     move up
//	s, down   move down
//	a, left   move left
//	d, right  move right
//	q, quit   stop playing
//
// Any other line, including an empty one, skips the turn.
//
// Usage:
//
//	loop := console.NewLoop(game, os.Stdin, os.Stdout,
//		console.WithRenderer(console.NewStyledRenderer()),
//		console.WithLogger(logger))
//	status, err := loop.Run(ctx)
package console
