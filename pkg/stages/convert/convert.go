// Package convert runs the artifact producer for every frame before the
// frames are extracted.
package convert

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/ports"
)

// Stage produces per-frame artifacts on a bounded worker pool.
type Stage struct {
	producer   ports.ArtifactProducer
	fs         ports.FileSystem
	progress   ports.Progress
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new convert stage.
// If numWorkers is 0 or negative, it defaults to runtime.NumCPU().
func NewStage(producer ports.ArtifactProducer, fs ports.FileSystem, progress ports.Progress, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		producer:   producer,
		fs:         fs,
		progress:   progress,
		logger:     logger.WithComponent("convert"),
		numWorkers: numWorkers,
	}
}

// Execute produces artifacts for frames 1..Count. The first failure cancels
// the frames not yet started; Execute returns only after every started
// conversion has finished.
func (s *Stage) Execute(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error) {
	result := pipeline.ConvertResult{}

	if input.Count < 0 || input.Count > container.MaxFrames {
		return result, fmt.Errorf("%w: %d", container.ErrFrameCountOutOfRange, input.Count)
	}
	if err := s.fs.MkdirAll(input.OutDir); err != nil {
		return result, fmt.Errorf("%w: create %s: %v", container.ErrIOFailure, input.OutDir, err)
	}

	s.logger.Debug("Converting %d frames with %d workers", input.Count, s.numWorkers)

	artifacts := make([]string, input.Count)

	s.progress.Start(input.Count, "convert")
	defer s.progress.Finish()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.numWorkers)

	for i := 1; i <= input.Count; i++ {
		index := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := s.producer.Produce(gctx, index, input.OutDir)
			if err != nil {
				return container.NewFrameError(index, "convert", err)
			}
			artifacts[index-1] = path
			s.progress.Advance(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	result.Artifacts = artifacts
	return result, nil
}
