package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/flare/internal/core/config"
	"github.com/colonyops/flare/internal/core/styles"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "flare config validate [options]",
				Description: "Validates the configuration file, checking banner policy bounds, mute glob patterns, and the theme name.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	_, err := config.Load(cmd.flags.ConfigPath)

	if cmd.format == "json" {
		return cmd.outputJSON(c, err)
	}

	return cmd.outputText(err)
}

func (cmd *ConfigValidateCmd) outputJSON(c *cli.Command, verr error) error {
	out := struct {
		Valid bool   `json:"valid"`
		Path  string `json:"path"`
		Error string `json:"error,omitempty"`
	}{
		Valid: verr == nil,
		Path:  cmd.flags.ConfigPath,
	}
	if verr != nil {
		out.Error = verr.Error()
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	if verr != nil {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(verr error) error {
	if verr != nil {
		fmt.Println(styles.TextErrorStyle.Render("✗ configuration is invalid"))
		return verr
	}

	fmt.Printf("✓ %s is valid\n", cmd.flags.ConfigPath)
	return nil
}
