package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rxtech-lab/argo-logger/internal/config"
	"github.com/rxtech-lab/argo-logger/internal/logger"
	"github.com/rxtech-lab/argo-logger/internal/version"
	"github.com/rxtech-lab/argo-logger/pkg/logging"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// resolveConfig reads --config when given and applies flag overrides on top.
func resolveConfig(cmd *cli.Command) (config.LoggerConfig, error) {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.LoggerConfig{}, err
		}
		cfg = loaded
	}

	if cmd.IsSet("trader-id") {
		cfg.TraderID = cmd.String("trader-id")
	}
	if cmd.IsSet("machine-id") {
		cfg.MachineID = cmd.String("machine-id")
	}
	if cmd.IsSet("instance-id") {
		cfg.InstanceID = cmd.String("instance-id")
	}
	if cmd.IsSet("level-stdout") {
		cfg.LevelStdout = cmd.String("level-stdout")
	}
	if cmd.IsSet("bypass") {
		cfg.IsBypassed = cmd.Bool("bypass")
	}

	return cfg, nil
}

// emitAction writes a single line through a logger built from flags and config.
func emitAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	lineLogger, err := cfg.Build()
	if err != nil {
		return err
	}
	defer func() { _ = lineLogger.Flush() }()

	level, err := logging.ParseLogLevel(cmd.String("level"))
	if err != nil {
		return err
	}

	color, err := logging.ParseLogColor(cmd.String("color"))
	if err != nil {
		return err
	}

	timestampNs := logging.LiveClock{}.TimestampNs()
	if raw := cmd.String("timestamp"); raw != "" {
		timestampNs, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid --timestamp %q: %w", raw, err)
		}
	}

	return lineLogger.Log(timestampNs, level, color, cmd.String("component"), cmd.String("message"))
}

func schemaAction(ctx context.Context, cmd *cli.Command) error {
	schema, err := config.GetConfigSchema()
	if err != nil {
		return fmt.Errorf("failed to generate config schema: %w", err)
	}

	fmt.Println(schema)

	return nil
}

func versionAction(ctx context.Context, cmd *cli.Command) error {
	fmt.Println(version.GetVersion())

	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "logline",
		Usage: "Emit colorized trader log lines",
		Commands: []*cli.Command{
			{
				Name:  "emit",
				Usage: "Write one log line to stdout or stderr",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a logger YAML config file",
					},
					&cli.StringFlag{
						Name:  "trader-id",
						Usage: "Trader identity, e.g. TRADER-001",
					},
					&cli.StringFlag{
						Name:  "machine-id",
						Usage: "Machine identifier",
					},
					&cli.StringFlag{
						Name:  "instance-id",
						Usage: "Instance UUID (version 4). Generated when omitted",
					},
					&cli.StringFlag{
						Name:  "level-stdout",
						Usage: "Minimum level written to stdout",
					},
					&cli.BoolFlag{
						Name:  "bypass",
						Usage: "Set the advisory bypass flag",
					},
					&cli.StringFlag{
						Name:    "level",
						Aliases: []string{"l"},
						Usage:   "Level of the line (DEBUG, INFO, WARNING, ERROR, CRITICAL)",
						Value:   "INFO",
					},
					&cli.StringFlag{
						Name:  "color",
						Usage: "Color of the line (normal, green, blue, magenta, cyan, yellow, red)",
						Value: "normal",
					},
					&cli.StringFlag{
						Name:  "component",
						Usage: "Component name",
						Value: "CLI",
					},
					&cli.StringFlag{
						Name:     "message",
						Aliases:  []string{"m"},
						Usage:    "Message text",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "timestamp",
						Usage: "Nanoseconds since the Unix epoch. Defaults to now",
					},
				},
				Action: emitAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the logger config JSON schema",
				Action: schemaAction,
			},
			{
				Name:   "version",
				Usage:  "Print the library version",
				Action: versionAction,
			},
		},
	}
}

func main() {
	diag, err := logger.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create diagnostics logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = diag.Sync() }()

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		diag.Error("logline failed", zap.Error(err))
		_ = diag.Sync()
		os.Exit(1)
	}
}
