// Package nativeconv converts source images into frame artifacts without any
// external tooling.
package nativeconv

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"path/filepath"
	"strconv"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/user/vidbin/pkg/artifact"
	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/ports"
	"github.com/user/vidbin/pkg/rgb565"
)

// DefaultExtensions are the source image extensions tried for each frame, in order.
var DefaultExtensions = []string{".png", ".bmp", ".webp", ".jpg", ".jpeg"}

// Config configures a Producer.
type Config struct {
	// SourceDir holds the frame images named <index><ext>.
	SourceDir string

	// Extensions overrides DefaultExtensions.
	Extensions []string

	// Resolution, when set, is the size every source image must have.
	Resolution *container.Resolution

	// Order is the byte order of the produced pixels.
	Order rgb565.ByteOrder

	// ArtifactExt is the extension of written artifacts (default: ".c").
	ArtifactExt string
}

// Producer implements ports.ArtifactProducer by decoding images in-process.
type Producer struct {
	fs  ports.FileSystem
	cfg Config
}

// New creates a new Producer.
func New(fs ports.FileSystem, cfg Config) *Producer {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}
	if cfg.ArtifactExt == "" {
		cfg.ArtifactExt = pipeline.DefaultArtifactExt
	}
	return &Producer{fs: fs, cfg: cfg}
}

// Produce converts the source image of frame index and writes
// <outDir>/<index><ArtifactExt>.
func (p *Producer) Produce(ctx context.Context, index int, outDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, err := p.findSource(index)
	if err != nil {
		return "", err
	}

	data, err := p.fs.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ports.ErrConvertFailed, src, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %v", ports.ErrConvertFailed, src, err)
	}

	b := img.Bounds()
	res, err := container.NewResolution(b.Dx(), b.Dy())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrConvertFailed, err)
	}
	if p.cfg.Resolution != nil && res != *p.cfg.Resolution {
		return "", fmt.Errorf("%w: %w: %s is %s, want %s",
			ports.ErrConvertFailed, ErrSizeMismatch, src, res, *p.cfg.Resolution)
	}

	content, err := artifact.Render(res, rgb565.FromImage(img, p.cfg.Order), artifact.Options{
		Name:        "frame_" + strconv.Itoa(index),
		ColorFormat: colorFormat(p.cfg.Order),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrConvertFailed, err)
	}

	out := filepath.Join(outDir, strconv.Itoa(index)+p.cfg.ArtifactExt)
	if err := p.fs.WriteFile(out, content); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", ports.ErrConvertFailed, out, err)
	}

	return out, nil
}

func (p *Producer) findSource(index int) (string, error) {
	name := strconv.Itoa(index)
	for _, ext := range p.cfg.Extensions {
		path := filepath.Join(p.cfg.SourceDir, name+ext)
		exists, err := p.fs.Exists(path)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ports.ErrConvertFailed, err)
		}
		if exists {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %w: frame %d in %s", ports.ErrConvertFailed, ErrSourceNotFound, index, p.cfg.SourceDir)
}

func colorFormat(order rgb565.ByteOrder) string {
	if order == rgb565.Native {
		return "LV_COLOR_FORMAT_RGB565"
	}
	return "LV_COLOR_FORMAT_RGB565_SWAPPED"
}

var _ ports.ArtifactProducer = (*Producer)(nil)
