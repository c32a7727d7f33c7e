package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ara-lang/forest/internal/analyzer"
	"github.com/ara-lang/forest/internal/config"
	"github.com/ara-lang/forest/internal/logger"
	"github.com/ara-lang/forest/internal/mcpserver"
	"github.com/ara-lang/forest/internal/report"
	"github.com/ara-lang/forest/internal/version"
)

func main() {
	app := &cli.App{
		Name:    "forest",
		Usage:   "Parse and lint an Ara project",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "project",
				Value: ".",
				Usage: "Project root directory to analyze",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to an explicit configuration file",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "When to use color in output: auto, always, never",
			},
			&cli.BoolFlag{
				Name:  "ascii",
				Usage: "Use ASCII-only box drawing in output",
			},
			&cli.StringFlag{
				Name:  "style",
				Usage: "Report rendering style: default, compact, comfortable",
			},
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "Diagnostic codes to suppress, in addition to the project's configured analyzer.ignore list",
			},
			&cli.BoolFlag{
				Name:  "mcp",
				Usage: "Serve the analysis pipeline as an MCP tool over stdio instead of analyzing once and exiting",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "forest: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("mcp") {
		return serveMCP(c)
	}
	return analyzeOnce(c)
}

func analyzeOnce(c *cli.Context) error {
	cfg, err := config.Load(c.String("project"), c.String("config"), config.Overrides{
		Color:        c.String("color"),
		ASCII:        c.Bool("ascii"),
		ASCIISet:     c.IsSet("ascii"),
		Style:        c.String("style"),
		AppendIgnore: c.StringSlice("ignore"),
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	result, err := analyzer.Run(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	sources := make(map[string][]byte)
	if result.Forest != nil {
		for _, s := range result.Forest.Sources {
			sources[s.Origin] = s.Content
		}
	}

	formatter := &report.Formatter{
		Style:   cfg.Reporting.Style,
		Color:   cfg.Reporting.Color,
		ASCII:   cfg.Reporting.ASCII,
		Sources: sources,
	}
	fmt.Print(formatter.Format(result.Report))

	if result.Report.HasErrorOrAbove() {
		return cli.Exit("", 1)
	}
	return nil
}

func serveMCP(c *cli.Context) error {
	server := mcpserver.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(ctx)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return nil
	case <-sigChan:
		cancel()
		<-errChan
		return nil
	}
}
