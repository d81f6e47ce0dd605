// Package main provides the CLI entry point for vidbin.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/vidbin/pkg/adapters/filesink"
	"github.com/user/vidbin/pkg/adapters/ggrenderer"
	"github.com/user/vidbin/pkg/adapters/logger"
	"github.com/user/vidbin/pkg/adapters/nullsink"
	"github.com/user/vidbin/pkg/ports"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "vidbin",
		Usage:   l10n.T("Pack RGB565 frames into a video binary for embedded displays"),
		Version: version,
		Description: l10n.T("vidbin reads per-frame C array artifacts, validates them and writes " +
			"a single binary container that display firmware streams frame by frame."),
		Commands: []*cli.Command{
			buildCommand(),
			inspectCommand(),
			versionCommand(),
		},
	}
}

// Flag categories
var (
	categoryInput      = l10n.T("Input")
	categoryOutput     = l10n.T("Output")
	categoryConversion = l10n.T("Conversion")
	categoryPreview    = l10n.T("Preview")
	categoryDebug      = l10n.T("Debug")
	categoryLogging    = l10n.T("Logging")
)

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Value:    "info",
			Usage:    l10n.T("Log level (debug, info, warn, error)"),
			Category: categoryLogging,
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"Q"},
			Usage:    l10n.T("Suppress all log output"),
			Category: categoryLogging,
		},
	}
}

func debugFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     "debug",
			Aliases:  []string{"d"},
			Usage:    l10n.T("Enable debug output"),
			Category: categoryDebug,
		},
		&cli.StringFlag{
			Name:     "debug-dir",
			Value:    "./debug",
			Usage:    l10n.T("Directory for debug output"),
			Category: categoryDebug,
		},
	}
}

func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

func newSink(enabled bool, dir string, fs ports.FileSystem, renderer *ggrenderer.Renderer) (ports.DebugSink, error) {
	if !enabled {
		return nullsink.New(), nil
	}
	if err := fs.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("create debug directory: %w", err)
	}
	return filesink.New(dir, fs, renderer), nil
}

// withSignals returns a context canceled on SIGINT or SIGTERM.
func withSignals(parent context.Context, log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("vidbin version %s", version))
			return nil
		},
	}
}
