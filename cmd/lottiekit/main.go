package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/lottiebuilder/lottie-go/internal/clog"
	"github.com/lottiebuilder/lottie-go/internal/config"
)

type cfgKey struct{}

func main() {
	app := &cli.App{
		Name:  "lottiekit",
		Usage: "inspect and edit Lottie compositions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "configuration file", EnvVars: []string{"LOTTIEKIT_CONFIG"}},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
		},
		Before: setup,
		Commands: []*cli.Command{
			infoCommand,
			layersCommand,
			exportCommand,
			importCommand,
			patchCommand,
			diffCommand,
			validateCommand,
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lottiekit: %s\n", err)
		os.Exit(1)
	}
}

func setup(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		parsed, err := config.Parse(path)
		if err != nil {
			return err
		}
		cfg = parsed
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	useColor := cfg.Color(!c.Bool("no-color"))
	if c.Bool("no-color") {
		useColor = false
	}
	color.NoColor = color.NoColor || !useColor

	_, ctx := clog.Setup(c.Context, os.Stderr, level, useColor)
	c.Context = context.WithValue(ctx, cfgKey{}, cfg)
	return nil
}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(cfgKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
