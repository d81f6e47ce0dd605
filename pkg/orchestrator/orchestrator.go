// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"

	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/ports"
	"github.com/user/vidbin/pkg/stages/extract"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Frames
	Count       int    // Number of frames, named 1..Count
	ArtifactDir string // Directory holding <index>.c artifacts
	ArtifactExt string // Artifact extension (default: ".c")

	// Convert runs the artifact producer for every frame before extraction.
	Convert bool

	// Resolution, when set, is the size every frame must have. Required
	// when Count is zero.
	Resolution *container.Resolution

	// Output
	OutputPath string

	// CleanArtifacts removes the per-frame artifacts after a successful build.
	CleanArtifacts bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ArtifactDir: "./output",
		ArtifactExt: pipeline.DefaultArtifactExt,
		OutputPath:  "./video_output/video.bin",
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult]
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult]
	encodeStage  pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs           ports.FileSystem
	sink         ports.DebugSink
	logger       ports.Logger
}

// New creates a new Orchestrator. convertStage may be nil when artifacts are
// always produced outside the pipeline.
func New(
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult],
	extractStage pipeline.Stage[pipeline.ExtractInput, pipeline.ExtractResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		convertStage: convertStage,
		extractStage: extractStage,
		encodeStage:  encodeStage,
		fs:           fs,
		sink:         sink,
		logger:       logger,
	}
}

// Run executes the complete pipeline. Any failure aborts the run and leaves
// no file at config.OutputPath.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting pipeline"))

	if config.Count == 0 {
		o.logger.Warn(l10n.T("No frames requested, the container will only hold a header"))
	}

	// 0. Drop the previous container so a failed build leaves nothing behind
	if err := o.removeStaleOutput(config.OutputPath); err != nil {
		o.logger.Error(l10n.F("Failed to remove previous output: %s", err))
		return RunResult{}, err
	}

	// 1. Convert source images (optional)
	converted := 0
	if config.Convert {
		if o.convertStage == nil {
			return RunResult{}, fmt.Errorf("convert stage: no artifact producer configured")
		}
		o.logger.Info(l10n.F("Converting %d frames", config.Count))
		conv, err := o.convertStage.Execute(ctx, pipeline.ConvertInput{
			Count:  config.Count,
			OutDir: config.ArtifactDir,
		})
		if err != nil {
			o.logger.Error(l10n.F("Failed to convert frames: %s", err))
			return RunResult{}, fmt.Errorf("convert stage: %w", err)
		}
		if err := checkArtifacts(conv.Artifacts, config); err != nil {
			o.logger.Error(l10n.F("Failed to convert frames: %s", err))
			return RunResult{}, fmt.Errorf("convert stage: %w", err)
		}
		converted = len(conv.Artifacts)
		o.logger.Info(l10n.F("Converted %d frames", converted))
	}

	// 2. Extract frames
	o.logger.Info(l10n.F("Reading %d frames from %s", config.Count, config.ArtifactDir))
	extracted, err := o.extractStage.Execute(ctx, pipeline.ExtractInput{
		Count:    config.Count,
		Dir:      config.ArtifactDir,
		Ext:      config.ArtifactExt,
		Expected: config.Resolution,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to read frames: %s", err))
		return RunResult{}, fmt.Errorf("extract stage: %w", err)
	}
	o.logger.Info(l10n.F("Resolution: %dx%d", extracted.Resolution.Width, extracted.Resolution.Height))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(buildManifest(extracted), "", "  "); err == nil {
			if err := o.sink.SaveManifestJSON(data); err != nil {
				o.logger.Warn(l10n.F("Failed to save debug output: %s", err))
			}
		}
	}

	// 3. Encode container
	o.logger.Info(l10n.F("Encoding %d frames", len(extracted.Frames)))
	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Resolution: extracted.Resolution,
		Frames:     extracted.Frames,
		OutputPath: config.OutputPath,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode container: %s", err))
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}
	o.logger.Info(l10n.F("Output saved to %s", encoded.OutputPath))

	// 4. Remove intermediate artifacts (optional)
	if config.CleanArtifacts {
		removed := o.cleanArtifacts(extracted.Frames, config)
		o.logger.Info(l10n.F("Removed %d artifacts", removed))
	}

	o.logger.Info(l10n.T("Pipeline completed successfully"))

	return RunResult{
		FrameCount:     len(extracted.Frames),
		Width:          int(extracted.Resolution.Width),
		Height:         int(extracted.Resolution.Height),
		ConvertedCount: converted,
		ArtifactDir:    config.ArtifactDir,
		OutputPath:     encoded.OutputPath,
		FileSize:       encoded.FileSize,
		ExpectedSize:   container.Size(extracted.Resolution, len(extracted.Frames)),
	}, nil
}

// checkArtifacts verifies that the producer wrote every artifact where the
// extract stage will look for it.
func checkArtifacts(artifacts []string, config Config) error {
	for i, path := range artifacts {
		want := extract.ArtifactPath(config.ArtifactDir, i+1, config.ArtifactExt)
		if filepath.Clean(path) != want {
			return container.NewFrameError(i+1, "artifact",
				fmt.Errorf("%w: wrote %s, expected %s", ports.ErrConvertFailed, path, want))
		}
	}
	return nil
}

func (o *Orchestrator) removeStaleOutput(path string) error {
	if path == "" {
		return nil
	}
	exists, err := o.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", container.ErrIOFailure, path, err)
	}
	if !exists {
		return nil
	}
	if err := o.fs.Remove(path); err != nil {
		return fmt.Errorf("%w: remove %s: %v", container.ErrIOFailure, path, err)
	}
	o.logger.Info(l10n.F("Removed previous output %s", path))
	return nil
}

// cleanArtifacts removes the artifacts of frames. Failures are logged and do
// not fail the run since the container is already in place.
func (o *Orchestrator) cleanArtifacts(frames []container.FrameRecord, config Config) int {
	removed := 0
	for _, f := range frames {
		path := extract.ArtifactPath(config.ArtifactDir, f.Index, config.ArtifactExt)
		if err := o.fs.Remove(path); err != nil {
			o.logger.Warn(l10n.F("Failed to remove artifact %s: %s", path, err))
			continue
		}
		removed++
	}
	return removed
}

// manifest is the debug description of a container about to be written.
type manifest struct {
	Width        int             `json:"width"`
	Height       int             `json:"height"`
	FrameCount   int             `json:"frame_count"`
	FrameSize    int             `json:"frame_size"`
	ExpectedSize int64           `json:"expected_size"`
	Frames       []manifestFrame `json:"frames"`
}

type manifestFrame struct {
	Index  int   `json:"index"`
	Offset int64 `json:"offset"`
	Bytes  int   `json:"bytes"`
}

func buildManifest(r pipeline.ExtractResult) manifest {
	m := manifest{
		Width:        int(r.Resolution.Width),
		Height:       int(r.Resolution.Height),
		FrameCount:   len(r.Frames),
		FrameSize:    r.Resolution.FrameSize(),
		ExpectedSize: container.Size(r.Resolution, len(r.Frames)),
		Frames:       make([]manifestFrame, 0, len(r.Frames)),
	}
	stride := int64(container.MarkerSize + r.Resolution.FrameSize())
	for i, f := range r.Frames {
		m.Frames = append(m.Frames, manifestFrame{
			Index:  f.Index,
			Offset: container.HeaderSize + int64(i)*stride,
			Bytes:  len(f.Payload),
		})
	}
	return m
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	// Frames
	FrameCount     int
	Width          int
	Height         int
	ConvertedCount int // Frames produced by the convert stage (0 if skipped)
	ArtifactDir    string

	// Output
	OutputPath   string
	FileSize     int64
	ExpectedSize int64 // 6 + n*(3 + w*h*2)
}
