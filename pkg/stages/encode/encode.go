// Package encode implements the container encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/ports"
)

// TempSuffix is appended to the output path while the container is written.
const TempSuffix = ".partial"

// Stage packs validated frames into a container file.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("encode"),
	}
}

// Execute builds the container in memory, writes it to a temporary path in a
// single write and renames it into place. On failure nothing is left at the
// output path.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{OutputPath: input.OutputPath}

	if input.OutputPath == "" {
		return result, fmt.Errorf("%w: no output path", container.ErrIOFailure)
	}

	header, err := container.NewHeader(input.Resolution, len(input.Frames))
	if err != nil {
		return result, err
	}

	s.logger.Debug("Encoding %d frames at %s", header.FrameCount, header.Resolution)

	enc := container.NewEncoder(header)
	for i, frame := range input.Frames {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if frame.Index != i+1 {
			return result, container.NewFrameError(frame.Index, "index",
				fmt.Errorf("out of order: expected frame %d", i+1))
		}
		if err := enc.Append(frame.Payload); err != nil {
			return result, container.NewFrameError(frame.Index, "payload", err)
		}
	}

	s.logger.Debug("Appended %d of %d frames", enc.Frames(), enc.Header().FrameCount)

	data, err := enc.Bytes()
	if err != nil {
		return result, err
	}

	if err := s.publish(input.OutputPath, data); err != nil {
		return result, err
	}

	s.logger.Debug("Wrote %d bytes to %s", len(data), input.OutputPath)

	result.Header = enc.Header()
	result.FileSize = int64(len(data))
	return result, nil
}

// publish writes data next to path and renames it over path.
func (s *Stage) publish(path string, data []byte) error {
	tmp := path + TempSuffix

	if err := s.fs.WriteFile(tmp, data); err != nil {
		s.discard(tmp)
		return fmt.Errorf("%w: write %s: %v", container.ErrIOFailure, tmp, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		s.discard(tmp)
		return fmt.Errorf("%w: rename %s: %v", container.ErrIOFailure, tmp, err)
	}
	return nil
}

func (s *Stage) discard(tmp string) {
	exists, err := s.fs.Exists(tmp)
	if err != nil || !exists {
		return
	}
	if err := s.fs.Remove(tmp); err != nil {
		s.logger.Warn("Failed to remove temporary file %s: %s", tmp, err)
	}
}
