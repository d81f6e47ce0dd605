package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/vidbin/pkg/adapters/ggrenderer"
	"github.com/user/vidbin/pkg/adapters/osfilesystem"
	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/rgb565"
	"github.com/user/vidbin/pkg/stages/inspect"
)

func inspectCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "sheet",
			Usage:    l10n.T("Write a PNG contact sheet of the selected frames"),
			Category: categoryPreview,
		},
		&cli.IntSliceFlag{
			Name:     "frames",
			Aliases:  []string{"f"},
			Usage:    l10n.T("Frames to preview (default: the first 16)"),
			Category: categoryPreview,
		},
		&cli.IntFlag{
			Name:     "columns",
			Value:    4,
			Usage:    l10n.T("Contact sheet columns"),
			Category: categoryPreview,
		},
		&cli.IntFlag{
			Name:     "scale",
			Value:    1,
			Usage:    l10n.T("Preview pixel scale"),
			Category: categoryPreview,
		},
		&cli.StringFlag{
			Name:     "byte-order",
			Value:    "swapped",
			Usage:    l10n.T("Pixel byte order (swapped, native)"),
			Category: categoryPreview,
		},
		&cli.BoolFlag{
			Name:     "json",
			Usage:    l10n.T("Print the container layout as JSON"),
			Category: categoryOutput,
		},
	}
	flags = append(flags, debugFlags()...)
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:        "inspect",
		Usage:       l10n.T("Verify a video container and preview its frames"),
		Description: l10n.T("Decode every frame of a container, check its size and optionally render a contact sheet."),
		ArgsUsage:   "<container>",
		Flags:       flags,
		Action:      runInspect,
	}
}

func runInspect(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New(l10n.T("A container path is required"))
	}

	order, err := rgb565.ParseByteOrder(c.String("byte-order"))
	if err != nil {
		return err
	}

	log := newLogger(c)
	ctx, cancel := withSignals(c.Context, log)
	defer cancel()

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	sink, err := newSink(c.Bool("debug"), c.String("debug-dir"), fs, renderer)
	if err != nil {
		return err
	}

	log.Info(l10n.F("Inspecting %s", path))

	stage := inspect.NewStage(fs, renderer, sink, log)
	result, err := stage.Execute(ctx, pipeline.InspectInput{
		Path:      path,
		SheetPath: c.String("sheet"),
		Frames:    c.IntSlice("frames"),
		Columns:   c.Int("columns"),
		Scale:     c.Int("scale"),
		Order:     order,
	})
	if err != nil {
		log.Error(l10n.F("Failed to inspect container: %s", err))
		return err
	}

	log.Info(l10n.F("Container: %dx%d, %d frames, %d bytes",
		result.Width, result.Height, result.FrameCount, result.FileSize))
	if result.SheetPath != "" {
		log.Info(l10n.F("Contact sheet saved to %s", result.SheetPath))
	}

	if c.Bool("json") {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, string(data))
	}

	return nil
}
