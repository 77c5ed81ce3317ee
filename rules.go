package main

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
)

//go:embed rules.md
var rulesMarkdown string

// rulesWordWrap is the column the rules text is wrapped at
const rulesWordWrap = 80

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:   "rules",
		Usage:  "explain how to play",
		Action: runRules,
	}
}

func runRules(_ context.Context, cmd *cli.Command) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(rulesWordWrap),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(rulesMarkdown)
	if err != nil {
		return fmt.Errorf("failed to render rules: %w", err)
	}
	_, err = fmt.Fprint(cmd.Root().Writer, rendered)
	return err
}
