package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/store"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/store/memstore"
	"github.com/Makepad-fr/tada/internal/store/sqlitestore"
	"github.com/Makepad-fr/tada/internal/ui"
	"github.com/Makepad-fr/tada/pkg/logutils"
)

// New builds the root command with every subcommand registered. Output goes
// to stdout and stderr.
func New(version string, stdout, stderr io.Writer) *cli.Command {
	var logCloser func()
	flags := &Flags{}

	app := &cli.Command{
		Name:      "tada",
		Usage:     "A small todo list for the terminal",
		UsageText: "tada [global options] [command [command options]]",
		Description: `tada keeps a todo list on disk and exports it as PDF, Excel or Word.

Run 'tada' with no arguments to open the interactive list.
Items are referenced by id or by their number in 'tada ls'.`,
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are decided by the caller.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TADA_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/tada.log)",
				Sources:     cli.EnvVars("TADA_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TADA_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TADA_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "storage",
				Usage:       "storage backend (json, sqlite, memory); overrides the config file",
				Sources:     cli.EnvVars("TADA_STORAGE"),
				Destination: &flags.Storage,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme (classic, neon, mono); overrides the config file",
				Sources:     cli.EnvVars("TADA_THEME"),
				Destination: &flags.Theme,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "disable ANSI colors",
				Sources:     cli.EnvVars("NO_COLOR"),
				Destination: &flags.NoColor,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/tada.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "tada.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			if flags.Storage != "" {
				cfg.Storage.Backend = flags.Storage
			}
			if flags.Theme != "" {
				cfg.TUI.Theme = flags.Theme
			}
			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("%w: %w", ErrUsage, err)
			}

			ui.SetColorForcing(false, flags.NoColor)
			if err := ui.SetTheme(cfg.TUI.Theme); err != nil {
				return ctx, fmt.Errorf("%w: %w", ErrUsage, err)
			}

			kv, err := openKV(ctx, cfg)
			if err != nil {
				return ctx, fmt.Errorf("open storage: %w", err)
			}

			log.Debug().
				Str("backend", cfg.Storage.Backend).
				Str("data_dir", cfg.DataDir).
				Msg("storage ready")

			flags.Config = cfg
			flags.KV = kv
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close storage
			if cl, ok := flags.KV.(store.Closer); ok {
				if err := cl.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close storage")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := NewTuiCmd(flags)

	app = NewLsCmd(flags).Register(app)
	app = NewAddCmd(flags).Register(app)
	app = NewEditCmd(flags).Register(app)
	app = NewDoneCmd(flags).Register(app)
	app = NewRmCmd(flags).Register(app)
	app = NewExportCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return usage(fmt.Sprintf("unknown command %q. Run 'tada --help' for usage", c.Args().First()))
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}

func openKV(ctx context.Context, cfg *config.Config) (store.KV, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return sqlitestore.Open(ctx, cfg.DataDir)
	case config.BackendMemory:
		return memstore.New(), nil
	default:
		return jsonstore.New(cfg.DataDir)
	}
}
