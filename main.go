package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/flare/internal/commands"
	"github.com/colonyops/flare/internal/core/config"
	"github.com/colonyops/flare/internal/core/styles"
	"github.com/colonyops/flare/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	demoCmd := commands.NewDemoCmd(flags)

	app := &cli.Command{
		Name:      "flare",
		Usage:     "Transient notification banners for the terminal",
		UsageText: "flare [global options] command [command options]",
		Description: `Flare renders stacked notification banners over a terminal UI: newest on
top, auto-dismissing unless persistent, draggable off screen with the mouse.

Run 'flare' with no arguments to open the interactive banner playground.
Run 'flare compose' to build a banner and open the playground showing it.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("FLARE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (set empty to disable logging)",
				Sources:     cli.EnvVars("FLARE_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("FLARE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: demoCmd.Run,
	}

	app = demoCmd.Register(app)
	app = commands.NewComposeCmd(flags, demoCmd).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewThemesCmd(flags).Register(app)

	if err := app.Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
