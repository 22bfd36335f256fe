package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/flare/internal/core/banner"
)

type ComposeCmd struct {
	flags *Flags
	demo  *DemoCmd

	level      string
	title      string
	message    string
	persistent bool
}

// NewComposeCmd creates a new compose command.
func NewComposeCmd(flags *Flags, demo *DemoCmd) *ComposeCmd {
	return &ComposeCmd{flags: flags, demo: demo}
}

// Register adds the compose command to the application.
func (cmd *ComposeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "compose",
		Usage:       "Compose a banner and open the playground showing it",
		UsageText:   "flare compose [options]",
		Description: "Builds a single banner, interactively unless all fields are given via flags, and opens the playground with it already on screen.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "level",
				Usage:       "banner level (success, warning, error)",
				Destination: &cmd.level,
			},
			&cli.StringFlag{
				Name:        "title",
				Usage:       "banner title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "message",
				Usage:       "banner message (markdown)",
				Destination: &cmd.message,
			},
			&cli.BoolFlag{
				Name:        "persistent",
				Usage:       "banner stays until dismissed",
				Destination: &cmd.persistent,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ComposeCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.level == "" || cmd.title == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	lvl := banner.Level(cmd.level)
	if !lvl.Valid() {
		return fmt.Errorf("invalid level %q", cmd.level)
	}

	k := banner.Kind{
		Level:      lvl,
		Title:      cmd.title,
		Message:    cmd.message,
		Persistent: cmd.persistent || lvl == banner.LevelError,
	}

	return cmd.demo.run(ctx, []banner.Kind{k})
}

func (cmd *ComposeCmd) runForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Level").
				Options(
					huh.NewOption("Success", string(banner.LevelSuccess)),
					huh.NewOption("Warning", string(banner.LevelWarning)),
					huh.NewOption("Error", string(banner.LevelError)),
				).
				Value(&cmd.level),
			huh.NewInput().
				Title("Title").
				Description("Shown on the banner's first line").
				Validate(validateTitle).
				Value(&cmd.title),
			huh.NewText().
				Title("Message").
				Description("Markdown, shown when the banner is expanded").
				Value(&cmd.message),
			huh.NewConfirm().
				Title("Persistent").
				Description("Persistent banners stay until dismissed").
				Value(&cmd.persistent),
		),
	).Run()
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
