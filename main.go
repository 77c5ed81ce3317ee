// Command theseus plays Theseus and the Minotaur in the terminal.
//
// Commands:
//  1. "play" (default) runs a game on a catalog board or a board file,
//     either line by line or as a full screen TUI
//  2. "list" prints the boards in the catalog
//  3. "validate" checks board files with the catalog's strict rules
//  4. "analyze" prints a short report for catalog boards
//  5. "rules" explains how to play
//
// Global flags select the boards directory and debug logging. Both can be
// set from the environment or a .env file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wricardo/theseus-maze/game/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "theseus"
)

const (
	envBoardsDir = "THESEUS_BOARDS_DIR"
	envDebug     = "THESEUS_DEBUG"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
	}

	if err := newApp(os.Stdin, os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newApp builds the command tree reading player input from in and writing
// everything the player sees to out
func newApp(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "escape the labyrinth before the Minotaur catches you",
		Version: Version,
		Reader:  in,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "boards-dir",
				Usage:   "directory containing board files (default: built-in boards)",
				Sources: cli.EnvVars(envBoardsDir),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars(envDebug),
			},
		},
		Commands: []*cli.Command{
			playCommand(),
			listCommand(),
			validateCommand(),
			analyzeCommand(),
			rulesCommand(),
		},
		DefaultCommand: "play",
	}
}

// newLogger builds the process logger. Logs go to stderr so they never mix
// with the board.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// newManager opens the board catalog: the boards directory when one is
// configured, otherwise the built-in boards
func newManager(cmd *cli.Command, logger *zap.Logger) (*config.Manager, error) {
	dir := cmd.String("boards-dir")
	if dir == "" {
		return config.NewEmbeddedManager(logger), nil
	}
	manager, err := config.NewManager(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open boards: %w", err)
	}
	return manager, nil
}
