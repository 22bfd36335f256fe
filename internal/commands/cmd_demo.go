package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/flare/internal/core/banner"
	"github.com/colonyops/flare/internal/tui"
)

type DemoCmd struct {
	flags *Flags
}

// NewDemoCmd creates a new demo command.
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{flags: flags}
}

// Register adds the demo command to the application.
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Open the interactive banner playground",
		UsageText: "flare demo",
		Action:    cmd.Run,
	})

	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *DemoCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, nil)
}

func (cmd *DemoCmd) run(_ context.Context, initial []banner.Kind) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; the banner playground needs an interactive session")
	}

	cfg := cmd.flags.Config
	store := banner.NewStore(cfg.Banners.StoreConfig(), banner.WithMute(cfg.Banners.MuteFunc()))

	m := tui.NewModel(cfg, store, tui.Options{InitialBanners: initial})
	p := tea.NewProgram(m)

	log.Debug().Int("initial_banners", len(initial)).Msg("starting banner playground")

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
