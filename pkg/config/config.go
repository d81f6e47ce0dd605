// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/orchestrator"
	"github.com/user/vidbin/pkg/pipeline"
	"github.com/user/vidbin/pkg/rgb565"
)

// Converter names accepted in Config.Converter.
const (
	ConverterNone   = "none"   // artifacts already exist in ArtifactDir
	ConverterNative = "native" // decode source images in-process
	ConverterExec   = "exec"   // run Command once per frame
)

// Config represents the full configuration for vidbin.
type Config struct {
	// Frames
	Frames           int  `yaml:"frames"`
	Width            int  `yaml:"width"`
	Height           int  `yaml:"height"`
	StrictResolution bool `yaml:"strict_resolution"`

	// Directories
	SourceDir   string `yaml:"source_dir"`
	SourceExt   string `yaml:"source_ext"`
	ArtifactDir string `yaml:"artifact_dir"`
	ArtifactExt string `yaml:"artifact_ext"`
	OutputPath  string `yaml:"output"`

	// Conversion
	Converter string   `yaml:"converter"`
	Command   []string `yaml:"command"`
	ByteOrder string   `yaml:"byte_order"`
	Workers   int      `yaml:"workers"`

	// Cleanup
	CleanArtifacts bool `yaml:"clean_artifacts"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// DefaultCommand runs the LVGL image converter on one frame.
var DefaultCommand = []string{
	"python", "lvgl-convert.py", "--ofmt", "C", "--cf", "RGB565_SWAPPED", "{input}",
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Frames
		Width:  128,
		Height: 160,

		// Directories
		SourceDir:   "./vid_frames",
		SourceExt:   ".png",
		ArtifactDir: "./output",
		ArtifactExt: pipeline.DefaultArtifactExt,
		OutputPath:  "./video_output/video.bin",

		// Conversion
		Converter: ConverterNone,
		Command:   append([]string(nil), DefaultCommand...),
		ByteOrder: rgb565.Swapped.String(),
		Workers:   runtime.NumCPU(),

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate reports the first setting that cannot produce a container.
func (c Config) Validate() error {
	if c.Frames < 0 || c.Frames > container.MaxFrames {
		return fmt.Errorf("%w: %d", container.ErrFrameCountOutOfRange, c.Frames)
	}
	if _, err := container.NewResolution(c.Width, c.Height); err != nil {
		return err
	}
	if c.OutputPath == "" {
		return errors.New("config: output path is required")
	}
	if c.ArtifactDir == "" {
		return errors.New("config: artifact directory is required")
	}
	if _, err := rgb565.ParseByteOrder(c.ByteOrder); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Converter {
	case "", ConverterNone, ConverterNative:
	case ConverterExec:
		if len(c.Command) == 0 {
			return errors.New("config: exec converter needs a command")
		}
	default:
		return fmt.Errorf("config: unknown converter %q", c.Converter)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Resolution returns the configured frame size.
func (c Config) Resolution() (container.Resolution, error) {
	return container.NewResolution(c.Width, c.Height)
}

// Order returns the configured pixel byte order.
func (c Config) Order() rgb565.ByteOrder {
	order, _ := rgb565.ParseByteOrder(c.ByteOrder)
	return order
}

// Converts reports whether artifacts are produced as part of the build.
func (c Config) Converts() bool {
	return c.Converter == ConverterNative || c.Converter == ConverterExec
}

// ToOrchestratorConfig converts Config to orchestrator.Config. The configured
// resolution is enforced when StrictResolution is set or there are no frames
// to take it from.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	oc := orchestrator.Config{
		Count:          c.Frames,
		ArtifactDir:    c.ArtifactDir,
		ArtifactExt:    c.ArtifactExt,
		Convert:        c.Converts(),
		OutputPath:     c.OutputPath,
		CleanArtifacts: c.CleanArtifacts,
	}
	if c.StrictResolution || c.Frames == 0 {
		if res, err := c.Resolution(); err == nil {
			oc.Resolution = &res
		}
	}
	return oc
}
