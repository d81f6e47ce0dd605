package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/vidbin/pkg/adapters/execconv"
	"github.com/user/vidbin/pkg/adapters/ggrenderer"
	"github.com/user/vidbin/pkg/adapters/nativeconv"
	"github.com/user/vidbin/pkg/adapters/osfilesystem"
	"github.com/user/vidbin/pkg/adapters/termprogress"
	"github.com/user/vidbin/pkg/config"
	"github.com/user/vidbin/pkg/orchestrator"
	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/ports"
	"github.com/user/vidbin/pkg/stages/convert"
	"github.com/user/vidbin/pkg/stages/encode"
	"github.com/user/vidbin/pkg/stages/extract"
	"github.com/user/vidbin/pkg/summarizer"
)

func buildCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    l10n.T("YAML configuration file"),
			Category: categoryInput,
		},
		&cli.IntFlag{
			Name:     "frames",
			Aliases:  []string{"n"},
			Usage:    l10n.T("Number of frames, named 1..n"),
			Category: categoryInput,
		},
		&cli.StringFlag{
			Name:     "artifact-dir",
			Aliases:  []string{"a"},
			Usage:    l10n.T("Directory holding <index>.c artifacts (default: ./output)"),
			Category: categoryInput,
		},
		&cli.IntFlag{
			Name:     "width",
			Aliases:  []string{"W"},
			Usage:    l10n.T("Frame width (default: 128)"),
			Category: categoryInput,
		},
		&cli.IntFlag{
			Name:     "height",
			Aliases:  []string{"H"},
			Usage:    l10n.T("Frame height (default: 160)"),
			Category: categoryInput,
		},
		&cli.BoolFlag{
			Name:     "strict",
			Usage:    l10n.T("Require every frame to have the configured resolution"),
			Category: categoryInput,
		},
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Output container path (default: ./video_output/video.bin)"),
			Category: categoryOutput,
		},
		&cli.BoolFlag{
			Name:     "clean",
			Usage:    l10n.T("Remove the artifacts after a successful build"),
			Category: categoryOutput,
		},
		&cli.StringFlag{
			Name:     "summary",
			Usage:    l10n.T("Output execution summary to file (Markdown format)"),
			Category: categoryOutput,
		},
		&cli.StringFlag{
			Name:     "converter",
			Usage:    l10n.T("Artifact producer (none, native, exec)"),
			Category: categoryConversion,
		},
		&cli.StringFlag{
			Name:     "source-dir",
			Aliases:  []string{"s"},
			Usage:    l10n.T("Directory holding <index>.png source images (default: ./vid_frames)"),
			Category: categoryConversion,
		},
		&cli.StringFlag{
			Name:     "command",
			Usage:    l10n.T("Converter command for exec ({input}, {index}, {outdir}, {output} are substituted)"),
			Category: categoryConversion,
		},
		&cli.StringFlag{
			Name:     "byte-order",
			Usage:    l10n.T("Pixel byte order (swapped, native)"),
			Category: categoryConversion,
		},
		&cli.IntFlag{
			Name:     "workers",
			Aliases:  []string{"j"},
			Usage:    l10n.T("Parallel conversions (default: number of CPUs)"),
			Category: categoryConversion,
		},
		&cli.BoolFlag{
			Name:     "no-progress",
			Usage:    l10n.T("Do not show a progress bar"),
			Category: categoryConversion,
		},
	}
	flags = append(flags, debugFlags()...)
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:        "build",
		Usage:       l10n.T("Build a video container from frame artifacts"),
		Description: l10n.T("Read frames 1..n from the artifact directory, optionally converting source images first, and write the container."),
		Flags:       flags,
		Action:      runBuild,
	}
}

// loadConfig reads the config file, if any, and applies command line overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("frames") {
		cfg.Frames = c.Int("frames")
	}
	if c.IsSet("artifact-dir") {
		cfg.ArtifactDir = c.String("artifact-dir")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("strict") {
		cfg.StrictResolution = c.Bool("strict")
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("clean") {
		cfg.CleanArtifacts = c.Bool("clean")
	}
	if c.IsSet("converter") {
		cfg.Converter = c.String("converter")
	}
	if c.IsSet("source-dir") {
		cfg.SourceDir = c.String("source-dir")
	}
	if c.IsSet("command") {
		cfg.Command = strings.Fields(c.String("command"))
	}
	if c.IsSet("byte-order") {
		cfg.ByteOrder = c.String("byte-order")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}

	return cfg, cfg.Validate()
}

// newProducer returns the artifact producer selected by cfg, or nil when the
// artifacts are expected to exist already.
func newProducer(cfg config.Config, fs ports.FileSystem, log ports.Logger) (ports.ArtifactProducer, error) {
	switch cfg.Converter {
	case config.ConverterNative:
		res, err := cfg.Resolution()
		if err != nil {
			return nil, err
		}
		return nativeconv.New(fs, nativeconv.Config{
			SourceDir:   cfg.SourceDir,
			Resolution:  &res,
			Order:       cfg.Order(),
			ArtifactExt: cfg.ArtifactExt,
		}), nil
	case config.ConverterExec:
		producer, err := execconv.New(execconv.Config{
			Command:     cfg.Command,
			SourceDir:   cfg.SourceDir,
			SourceExt:   cfg.SourceExt,
			ArtifactExt: cfg.ArtifactExt,
		}, log)
		if err != nil {
			return nil, err
		}
		return producer, nil
	default:
		return nil, nil
	}
}

func runBuild(c *cli.Context) error {
	started := time.Now()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log := newLogger(c)
	ctx, cancel := withSignals(c.Context, log)
	defer cancel()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	sink, err := newSink(cfg.Debug, cfg.DebugDir, fs, renderer)
	if err != nil {
		return err
	}

	producer, err := newProducer(cfg, fs, log)
	if err != nil {
		return err
	}

	var progress ports.Progress = termprogress.Noop{}
	if !c.Bool("quiet") && !c.Bool("no-progress") {
		progress = termprogress.NewAuto()
	}

	// Create stages
	var convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult]
	if producer != nil {
		convertStage = convert.NewStage(producer, fs, progress, log, cfg.Workers)
	}
	extractStage := extract.NewStage(fs, log)
	encodeStage := encode.NewStage(fs, log)

	orch := orchestrator.New(convertStage, extractStage, encodeStage, fs, sink, log)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	if path := c.String("summary"); path != "" {
		if err := writeSummary(path, cfg, result, time.Since(started), fs); err != nil {
			log.Error(l10n.F("Failed to write summary: %s", err))
			return err
		}
		log.Info(l10n.F("Summary saved to %s", path))
	}

	return nil
}

func writeSummary(path string, cfg config.Config, result orchestrator.RunResult, elapsed time.Duration, fs ports.FileSystem) error {
	sourceDir := ""
	if cfg.Converts() {
		sourceDir = cfg.SourceDir
	}

	summary := summarizer.NewBuilder().
		WithInput(sourceDir, result.ArtifactDir, result.ConvertedCount).
		WithSettings(summarizer.Settings{
			Converter:        cfg.Converter,
			ByteOrder:        cfg.Order().String(),
			Workers:          cfg.Workers,
			StrictResolution: cfg.StrictResolution,
			CleanArtifacts:   cfg.CleanArtifacts,
		}).
		WithContainer(summarizer.ContainerInfo{
			Path:         result.OutputPath,
			Width:        result.Width,
			Height:       result.Height,
			FrameCount:   result.FrameCount,
			FileSize:     result.FileSize,
			ExpectedSize: result.ExpectedSize,
		}).
		WithElapsed(elapsed).
		Build()

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(func(s string) string { return l10n.T(s) }),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(formatter, fs).Write(path, summary)
}
