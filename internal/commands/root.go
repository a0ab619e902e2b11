package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/postbrowser/internal/core/config"
	"github.com/colonyops/postbrowser/internal/core/styles"
	"github.com/colonyops/postbrowser/pkg/logutils"
)

// NewApp assembles the root command with its global flags, lifecycle hooks
// and subcommands. Running it with no subcommand opens the browser.
func NewApp(flags *Flags, version string) *cli.Command {
	var logCloser func()

	app := &cli.Command{
		Name:      "postbrowser",
		Usage:     "Browse, search and edit posts from a REST endpoint",
		UsageText: "postbrowser [global options] command [command options]",
		Description: `postbrowser reads a collection of posts once and shows it as a paginated,
searchable table. Posts can be viewed, edited and deleted in memory; nothing
is written back to the endpoint.

Run 'postbrowser' with no arguments to open the interactive browser.
Run 'postbrowser ls' to print one page of posts.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("POSTBROWSER_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("POSTBROWSER_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("POSTBROWSER_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "endpoint",
				Usage:       "posts endpoint, overrides the config file",
				Sources:     cli.EnvVars("POSTBROWSER_ENDPOINT"),
				Destination: &flags.Endpoint,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := loadConfig(flags)
			if err != nil {
				return ctx, err
			}
			flags.Config = cfg

			// Validation ensures the theme name is known.
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			log.Debug().
				Str("endpoint", cfg.Endpoint).
				Str("config", flags.ConfigPath).
				Msg("config loaded")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := NewTuiCmd(flags)

	app = NewLsCmd(flags).Register(app)
	app = NewConfigCmd(flags).Register(app)

	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'postbrowser --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}

// loadConfig reads the config file and applies the endpoint override.
func loadConfig(flags *Flags) (*config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if flags.Endpoint != "" {
		cfg.Endpoint = flags.Endpoint
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --endpoint: %w", err)
		}
	}

	return cfg, nil
}
