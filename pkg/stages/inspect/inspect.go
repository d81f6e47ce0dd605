// Package inspect reads a container back, verifies its structure and renders
// frame previews.
package inspect

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"io"

	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/ports"
	"github.com/user/vidbin/pkg/rgb565"
)

const (
	defaultColumns = 4
	sheetGap       = 8
	labelHeight    = 16
)

var (
	sheetBackground = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	sheetBorder     = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	sheetLabel      = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// Stage decodes a container file.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new inspect stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("inspect"),
	}
}

// Execute decodes every frame of input.Path. Frames are located by position,
// the same way the firmware reads them, and the file must end exactly after
// the last declared frame.
func (s *Stage) Execute(ctx context.Context, input pipeline.InspectInput) (pipeline.InspectResult, error) {
	result := pipeline.InspectResult{}

	data, err := s.fs.ReadFile(input.Path)
	if err != nil {
		return result, fmt.Errorf("%w: read %s: %v", container.ErrIOFailure, input.Path, err)
	}

	r := bytes.NewReader(data)
	dec := container.NewDecoder(r)
	header, err := dec.Header()
	if err != nil {
		return result, err
	}

	result.Header = header
	result.Width = int(header.Width)
	result.Height = int(header.Height)
	result.FrameCount = int(header.FrameCount)
	result.FileSize = int64(len(data))
	result.ExpectedSize = header.Size()
	result.Frames = make([]pipeline.FrameInfo, 0, header.FrameCount)

	s.logger.Debug("Header: %s, %d frames", header.Resolution, header.FrameCount)

	wanted, err := selectFrames(input.Frames, int(header.FrameCount))
	if err != nil {
		return result, err
	}
	previews := make(map[int]image.Image, len(wanted))

	offset := int64(container.HeaderSize)
	for index := 1; ; index++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		payload, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, err
		}

		result.Frames = append(result.Frames, pipeline.FrameInfo{
			Index:  index,
			Offset: offset,
			CRC32:  crc32.ChecksumIEEE(payload),
		})
		offset += int64(header.FrameStride())

		if wanted[index] {
			img, err := rgb565.ToImage(result.Width, result.Height, payload, input.Order)
			if err != nil {
				return result, container.NewFrameError(index, "preview", err)
			}
			previews[index] = img
		}
	}

	if r.Len() > 0 {
		return result, fmt.Errorf("%w: %d bytes", container.ErrTrailingData, r.Len())
	}

	if s.sink.Enabled() {
		for index, img := range previews {
			if err := s.sink.SaveFramePreview(index, img); err != nil {
				s.logger.Warn("Failed to save preview of frame %d: %s", index, err)
			}
		}
	}

	if input.SheetPath != "" {
		if header.Width == 0 || header.Height == 0 || len(previews) == 0 {
			s.logger.Warn("Nothing to preview, skipping contact sheet")
		} else {
			if err := s.writeSheet(input, header.Resolution, previews); err != nil {
				return result, err
			}
			result.SheetPath = input.SheetPath
		}
	}

	return result, nil
}

// selectFrames returns the set of frames to preview. An empty selection means
// the first MaxSheetFrames frames.
func selectFrames(frames []int, count int) (map[int]bool, error) {
	wanted := make(map[int]bool)
	if len(frames) == 0 {
		for i := 1; i <= count && i <= pipeline.MaxSheetFrames; i++ {
			wanted[i] = true
		}
		return wanted, nil
	}
	for _, f := range frames {
		if f < 1 || f > count {
			return nil, fmt.Errorf("frame %d not in container (1..%d)", f, count)
		}
		wanted[f] = true
	}
	return wanted, nil
}

func (s *Stage) writeSheet(input pipeline.InspectInput, res container.Resolution, previews map[int]image.Image) error {
	sheet := s.renderSheet(input, res, previews)

	data, err := s.renderer.EncodeImage(sheet, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode contact sheet: %w", err)
	}
	if err := s.fs.WriteFile(input.SheetPath, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", container.ErrIOFailure, input.SheetPath, err)
	}

	s.logger.Debug("Contact sheet with %d frames written to %s", len(previews), input.SheetPath)
	return nil
}

// renderSheet lays out the previews in index order on a grid, each labeled
// with its frame number.
func (s *Stage) renderSheet(input pipeline.InspectInput, res container.Resolution, previews map[int]image.Image) image.Image {
	columns := input.Columns
	if columns <= 0 {
		columns = defaultColumns
	}
	if columns > len(previews) {
		columns = len(previews)
	}
	scale := input.Scale
	if scale <= 0 {
		scale = 1
	}

	cellW := int(res.Width) * scale
	cellH := int(res.Height) * scale
	rows := (len(previews) + columns - 1) / columns

	width := columns*cellW + (columns+1)*sheetGap
	height := rows*(cellH+labelHeight) + (rows+1)*sheetGap

	canvas := s.renderer.CreateCanvas(width, height, sheetBackground)
	style := ports.TextStyle{FontSize: 12, Color: sheetLabel, Align: ports.AlignCenter}

	slot := 0
	for index := 1; slot < len(previews); index++ {
		img, ok := previews[index]
		if !ok {
			continue
		}
		col := slot % columns
		row := slot / columns
		x := sheetGap + col*(cellW+sheetGap)
		y := sheetGap + row*(cellH+labelHeight+sheetGap)

		canvas.DrawImageScaled(img, x, y, cellW, cellH)
		canvas.DrawRectStroke(x, y, cellW, cellH, sheetBorder, 1)
		canvas.DrawText(fmt.Sprintf("#%d", index), x+cellW/2, y+cellH+labelHeight/2, style)
		slot++
	}

	return canvas.ToImage()
}
