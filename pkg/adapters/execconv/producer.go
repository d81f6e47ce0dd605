// Package execconv runs an external image converter once per frame.
package execconv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/ports"
)

// maxStderr bounds how much converter output is kept in an ExitError.
const maxStderr = 4096

// Placeholders substituted in every argument of the command template.
const (
	PlaceholderInput  = "{input}"
	PlaceholderIndex  = "{index}"
	PlaceholderOutDir = "{outdir}"
	PlaceholderOutput = "{output}"
)

// Config configures a Producer.
type Config struct {
	// Command is the argv template, e.g.
	// ["python3", "lvgl-convert.py", "--ofmt", "C", "--cf", "RGB565_SWAPPED", "-o", "{outdir}", "{input}"].
	Command []string

	// SourceDir holds the frame images named <index><SourceExt>.
	SourceDir string

	// SourceExt is the extension of source images (default: ".png").
	SourceExt string

	// ArtifactExt is the extension of the artifact the command writes
	// (default: ".c").
	ArtifactExt string
}

// Producer implements ports.ArtifactProducer by running Command for each frame.
type Producer struct {
	path   string
	cfg    Config
	logger ports.Logger
}

// New resolves the converter executable and returns a Producer.
func New(cfg Config, logger ports.Logger) (*Producer, error) {
	if len(cfg.Command) == 0 || cfg.Command[0] == "" {
		return nil, ErrEmptyCommand
	}
	path, err := exec.LookPath(cfg.Command[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, cfg.Command[0])
	}
	if cfg.SourceExt == "" {
		cfg.SourceExt = ".png"
	}
	if cfg.ArtifactExt == "" {
		cfg.ArtifactExt = pipeline.DefaultArtifactExt
	}
	return &Producer{
		path:   path,
		cfg:    cfg,
		logger: logger.WithComponent("execconv"),
	}, nil
}

// Args returns the command arguments for frame index.
func (p *Producer) Args(index int, outDir string) []string {
	r := strings.NewReplacer(
		PlaceholderInput, p.inputPath(index),
		PlaceholderIndex, strconv.Itoa(index),
		PlaceholderOutDir, outDir,
		PlaceholderOutput, p.outputPath(index, outDir),
	)
	args := make([]string, 0, len(p.cfg.Command)-1)
	for _, a := range p.cfg.Command[1:] {
		args = append(args, r.Replace(a))
	}
	return args
}

func (p *Producer) inputPath(index int) string {
	return filepath.Join(p.cfg.SourceDir, strconv.Itoa(index)+p.cfg.SourceExt)
}

func (p *Producer) outputPath(index int, outDir string) string {
	return filepath.Join(outDir, strconv.Itoa(index)+p.cfg.ArtifactExt)
}

// Produce runs the converter for frame index and returns
// <outDir>/<index><ArtifactExt>.
// The converter is killed when ctx is canceled.
func (p *Producer) Produce(ctx context.Context, index int, outDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.path, p.Args(index, outDir)...)
	cmd.Stderr = &stderr

	p.logger.Debug("Running %s for frame %d", p.cfg.Command[0], index)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		exitErr := &ExitError{
			Frame:    index,
			Command:  p.cfg.Command[0],
			ExitCode: -1,
			Stderr:   tail(stderr.String(), maxStderr),
			Err:      err,
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			exitErr.ExitCode = ee.ExitCode()
		}
		return "", fmt.Errorf("%w: %w", ports.ErrConvertFailed, exitErr)
	}

	out := p.outputPath(index, outDir)
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("%w: %w: %s", ports.ErrConvertFailed, ErrNoArtifact, out)
	}
	return out, nil
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}

var _ ports.ArtifactProducer = (*Producer)(nil)
