// Package extract implements the frame source stage: it reads the per-frame
// artifacts, recovers the container resolution and validates every payload.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/user/vidbin/pkg/artifact"
	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/ports"
)

// Stage reads frames 1..n from artifact files.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new extract stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("extract"),
	}
}

// ArtifactPath returns the artifact path of frame index in dir.
func ArtifactPath(dir string, index int, ext string) string {
	if ext == "" {
		ext = pipeline.DefaultArtifactExt
	}
	return filepath.Join(dir, strconv.Itoa(index)+ext)
}

// Execute reads and validates all frames. Resolution is taken from frame 1
// and every payload must be exactly w*h*2 bytes. When input.Expected is set,
// every frame must also declare that resolution.
// The first failing frame aborts the whole extraction.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExtractInput) (pipeline.ExtractResult, error) {
	result := pipeline.ExtractResult{}

	if input.Count < 0 || input.Count > container.MaxFrames {
		return result, fmt.Errorf("%w: %d", container.ErrFrameCountOutOfRange, input.Count)
	}

	if input.Count == 0 {
		if input.Expected == nil {
			return result, fmt.Errorf("%w: no frames and no resolution given", container.ErrMalformedResolution)
		}
		result.Resolution = *input.Expected
		result.Frames = []container.FrameRecord{}
		s.logger.Debug("No frames to extract, using resolution %s", result.Resolution)
		return result, nil
	}

	first, err := s.read(input, 1)
	if err != nil {
		return result, err
	}
	res, err := artifact.ParseResolution(first)
	if err != nil {
		return result, container.NewFrameError(1, "resolution", err)
	}
	if input.Expected != nil && *input.Expected != res {
		return result, container.NewFrameError(1, "resolution",
			fmt.Errorf("%w: artifact declares %s, expected %s", container.ErrResolutionMismatch, res, *input.Expected))
	}
	s.logger.Debug("Resolution %s from frame 1", res)

	frames := make([]container.FrameRecord, 0, input.Count)
	for i := 1; i <= input.Count; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		content := first
		if i > 1 {
			content, err = s.read(input, i)
			if err != nil {
				return result, err
			}
			if input.Expected != nil {
				if err := checkResolution(content, *input.Expected); err != nil {
					return result, container.NewFrameError(i, "resolution", err)
				}
			}
		}

		payload, err := artifact.ParseFramePayload(content)
		if err != nil {
			return result, container.NewFrameError(i, "payload", err)
		}
		if len(payload) != res.FrameSize() {
			return result, container.NewFrameError(i, "payload",
				fmt.Errorf("%w: got %d bytes, want %d for %s",
					container.ErrPayloadLength, len(payload), res.FrameSize(), res))
		}

		s.logger.Debug("Parsed frame %d (%d bytes)", i, len(payload))
		frames = append(frames, container.FrameRecord{Index: i, Payload: payload})
	}

	result.Resolution = res
	result.Frames = frames
	return result, nil
}

func (s *Stage) read(input pipeline.ExtractInput, index int) ([]byte, error) {
	path := ArtifactPath(input.Dir, index, input.Ext)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, container.NewFrameError(index, "artifact",
			fmt.Errorf("%w: read %s: %v", container.ErrIOFailure, path, err))
	}
	return data, nil
}

func checkResolution(content []byte, expected container.Resolution) error {
	res, err := artifact.ParseResolution(content)
	if err != nil {
		return err
	}
	if res != expected {
		return fmt.Errorf("%w: artifact declares %s, expected %s", container.ErrResolutionMismatch, res, expected)
	}
	return nil
}
