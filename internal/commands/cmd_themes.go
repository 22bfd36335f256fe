package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/flare/internal/core/styles"
)

type ThemesCmd struct {
	flags *Flags
}

// NewThemesCmd creates a new themes command.
func NewThemesCmd(flags *Flags) *ThemesCmd {
	return &ThemesCmd{flags: flags}
}

// Register adds the themes command to the application.
func (cmd *ThemesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "themes",
		Usage:     "List available themes",
		UsageText: "flare themes",
		Action:    cmd.run,
	})

	return app
}

func (cmd *ThemesCmd) run(_ context.Context, _ *cli.Command) error {
	active := cmd.flags.Config.TUI.Theme

	for _, name := range styles.ThemeNames() {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}

	return nil
}
