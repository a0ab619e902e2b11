package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type ConfigCmd struct {
	flags *Flags
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "postbrowser config validate",
				Description: "Loads and validates the configuration file, then prints the resolved values including defaults and the --endpoint override.",
				Action:      cmd.validate,
			},
		},
	})

	return app
}

// validate runs after the Before hook has loaded and validated the config,
// so reaching it means the file is valid.
func (cmd *ConfigCmd) validate(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer

	source := cmd.flags.ConfigPath
	if _, err := os.Stat(source); errors.Is(err, fs.ErrNotExist) {
		source += " (not found, using defaults)"
	}

	bits, err := yaml.Marshal(cmd.flags.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, _ = fmt.Fprintf(out, "config ok: %s\n\n", source)
	_, _ = out.Write(bits)
	return nil
}
