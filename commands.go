package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/wricardo/theseus-maze/game/config"
	"github.com/wricardo/theseus-maze/game/console"
	"github.com/wricardo/theseus-maze/game/engine"
	"github.com/wricardo/theseus-maze/game/tui"
)

var (
	errInvalidBoards = errors.New("some boards have errors")
	errNoFiles       = errors.New("at least one board file is required")
)

// maxListedEdges caps how many open edge cells analyze prints
const maxListedEdges = 5

type loggedAction func(ctx context.Context, cmd *cli.Command, logger *zap.Logger) error

// withLogger builds the logger from the global flags before running action
func withLogger(action loggedAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		logger, err := newLogger(cmd.Bool("debug"))
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		return action(ctx, cmd, logger)
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play a game (default)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "board",
				Aliases: []string{"b"},
				Usage:   "catalog board id (default: classic)",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "play a board file instead of a catalog board",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "draw the board with colors",
			},
			&cli.BoolFlag{
				Name:  "tui",
				Usage: "play in a full screen terminal UI",
			},
		},
		Action: withLogger(runPlay),
	}
}

func runPlay(ctx context.Context, cmd *cli.Command, logger *zap.Logger) error {
	board, err := selectBoard(cmd, logger)
	if err != nil {
		return err
	}
	game, err := board.NewGame()
	if err != nil {
		return fmt.Errorf("board %q: %w", board.Name, err)
	}

	logger.Info("starting game", zap.String("board", board.Name), zap.Bool("tui", cmd.Bool("tui")))
	out := cmd.Root().Writer

	if cmd.Bool("tui") {
		status, err := tui.Run(ctx, game, logger, tea.WithAltScreen())
		if err != nil {
			return err
		}
		if status.Over() {
			fmt.Fprintln(out, console.StatusMessage(status))
		}
		return nil
	}

	fmt.Fprintf(out, "%s\n\n", board.Name)
	opts := []console.LoopOption{console.WithLogger(logger)}
	if cmd.Bool("color") {
		opts = append(opts, console.WithRenderer(console.NewStyledRenderer()))
	}
	_, err = console.NewLoop(game, cmd.Root().Reader, out, opts...).Run(ctx)
	return err
}

// selectBoard resolves the board to play: an explicit file, a catalog id or
// the catalog default
func selectBoard(cmd *cli.Command, logger *zap.Logger) (*config.BoardConfig, error) {
	if path := cmd.String("file"); path != "" {
		return config.LoadFile(path)
	}

	manager, err := newManager(cmd, logger)
	if err != nil {
		return nil, err
	}
	if name := cmd.String("board"); name != "" {
		return manager.LoadBoard(name)
	}
	return manager.GetDefault(), nil
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "list the boards in the catalog",
		Action: withLogger(runList),
	}
}

func runList(_ context.Context, cmd *cli.Command, logger *zap.Logger) error {
	manager, err := newManager(cmd, logger)
	if err != nil {
		return err
	}
	boards, err := manager.ListBoards()
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "SIZE", "DESCRIPTION")
	for _, b := range boards {
		t.Row(b.BoardID, b.Name, fmt.Sprintf("%dx%d", b.Width, b.Rows), b.Description)
	}

	out := cmd.Root().Writer
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "%d boards (%s)\n", len(boards), manager.Source())
	return nil
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check board files",
		ArgsUsage: "FILE...",
		Action:    withLogger(runValidate),
	}
}

func runValidate(_ context.Context, cmd *cli.Command, logger *zap.Logger) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return errNoFiles
	}

	out := cmd.Root().Writer
	allValid := true
	for _, file := range files {
		result := config.ValidateFile(file)
		logger.Debug("validated board file", zap.String("file", file), zap.Bool("valid", result.Valid))

		fmt.Fprintf(out, "\n%s %s\n", strings.Repeat("=", 20), result.File)
		if result.Valid {
			fmt.Fprintln(out, "✅ VALID")
		} else {
			fmt.Fprintln(out, "❌ INVALID")
			allValid = false
			for _, e := range result.Errors {
				fmt.Fprintln(out, "  ❌ "+e)
			}
		}
		for _, w := range result.Warnings {
			fmt.Fprintln(out, "  ⚠️  "+w)
		}
	}

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 40))
	if !allValid {
		fmt.Fprintln(out, "❌ Some boards have errors")
		return errInvalidBoards
	}
	fmt.Fprintln(out, "✅ All boards are valid!")
	return nil
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "print a report for catalog boards (all boards when none are named)",
		ArgsUsage: "[NAME...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the reports as JSON",
			},
		},
		Action: withLogger(runAnalyze),
	}
}

// boardAnalysis is one entry of the analyze output
type boardAnalysis struct {
	Board string `json:"board"`
	Name  string `json:"name"`
	engine.Report
}

func runAnalyze(_ context.Context, cmd *cli.Command, logger *zap.Logger) error {
	manager, err := newManager(cmd, logger)
	if err != nil {
		return err
	}

	names := cmd.Args().Slice()
	if len(names) == 0 {
		boards, err := manager.ListBoards()
		if err != nil {
			return err
		}
		for _, b := range boards {
			names = append(names, b.BoardID)
		}
	}

	var analyses []boardAnalysis
	for _, name := range names {
		board, err := manager.LoadBoard(name)
		if err != nil {
			return err
		}
		game, err := board.NewGame()
		if err != nil {
			return fmt.Errorf("board %q: %w", name, err)
		}
		analyses = append(analyses, boardAnalysis{Board: name, Name: board.Name, Report: engine.Analyze(game)})
	}

	out := cmd.Root().Writer
	if cmd.Bool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(analyses)
	}

	for _, a := range analyses {
		printAnalysis(cmd, a)
	}
	return nil
}

func printAnalysis(cmd *cli.Command, a boardAnalysis) {
	out := cmd.Root().Writer
	fmt.Fprintf(out, "\n=== Analyzing %s ===\n", a.Board)
	fmt.Fprintf(out, "Name: %s\n", a.Name)
	fmt.Fprintf(out, "Grid Size: %d x %d\n", a.Width, a.Rows)
	fmt.Fprintf(out, "Walls: %d\n", a.Walls)
	fmt.Fprintf(out, "Theseus: (%d, %d)\n", a.Theseus.Row, a.Theseus.Col)
	fmt.Fprintf(out, "Minotaur: (%d, %d)\n", a.Minotaur.Row, a.Minotaur.Col)
	fmt.Fprintf(out, "Goal: (%d, %d)\n", a.Goal.Row, a.Goal.Col)
	fmt.Fprintf(out, "Distance to goal: %d\n", a.GoalDistance)
	fmt.Fprintf(out, "Distance to Minotaur: %d\n", a.MinotaurDistance)

	if a.Enclosed {
		fmt.Fprintln(out, "✅ Board is enclosed by walls")
		return
	}
	fmt.Fprintf(out, "⚠️  WARNING: %d open cells touch the edge of the board\n", len(a.OpenEdges))
	for i, p := range a.OpenEdges {
		if i == maxListedEdges {
			fmt.Fprintf(out, "   ... and %d more\n", len(a.OpenEdges)-maxListedEdges)
			break
		}
		fmt.Fprintf(out, "   Open: (%d, %d)\n", p.Row, p.Col)
	}
}
