package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/user/vidbin/pkg/container"
	"github.com/user/vidbin/pkg/rgb565"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Width != 128 || cfg.Height != 160 {
		t.Errorf("expected 128x160, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.SourceDir != "./vid_frames" || cfg.ArtifactDir != "./output" {
		t.Errorf("unexpected directories %q, %q", cfg.SourceDir, cfg.ArtifactDir)
	}
	if cfg.OutputPath != "./video_output/video.bin" {
		t.Errorf("unexpected output %q", cfg.OutputPath)
	}
	if cfg.Workers <= 0 {
		t.Errorf("expected positive workers, got %d", cfg.Workers)
	}
	if cfg.Order() != rgb565.Swapped {
		t.Errorf("expected swapped byte order, got %s", cfg.Order())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaults_CommandIsCopied(t *testing.T) {
	cfg := Defaults()
	cfg.Command[0] = "changed"

	if DefaultCommand[0] != "python" {
		t.Error("expected DefaultCommand to be unaffected")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vidbin.yaml")
	yaml := `
frames: 120
width: 240
height: 240
converter: exec
command: ["lvgl-convert", "-o", "{outdir}", "{input}"]
byte_order: native
clean_artifacts: true
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Frames != 120 || cfg.Width != 240 || cfg.Height != 240 {
		t.Errorf("unexpected frames/size %d %dx%d", cfg.Frames, cfg.Width, cfg.Height)
	}
	if cfg.Converter != ConverterExec || !cfg.Converts() {
		t.Errorf("expected exec converter, got %q", cfg.Converter)
	}
	if !reflect.DeepEqual(cfg.Command, []string{"lvgl-convert", "-o", "{outdir}", "{input}"}) {
		t.Errorf("unexpected command %v", cfg.Command)
	}
	if cfg.Order() != rgb565.Native {
		t.Errorf("expected native order, got %s", cfg.Order())
	}
	// Unset keys keep their defaults.
	if cfg.ArtifactDir != "./output" {
		t.Errorf("expected default artifact dir, got %q", cfg.ArtifactDir)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("frames: [1, 2"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"frames out of range", func(c *Config) { c.Frames = 65536 }, container.ErrFrameCountOutOfRange},
		{"negative frames", func(c *Config) { c.Frames = -1 }, container.ErrFrameCountOutOfRange},
		{"width out of range", func(c *Config) { c.Width = 70000 }, container.ErrResolutionOutOfRange},
		{"no output", func(c *Config) { c.OutputPath = "" }, nil},
		{"unknown converter", func(c *Config) { c.Converter = "magic" }, nil},
		{"exec without command", func(c *Config) { c.Converter = ConverterExec; c.Command = nil }, nil},
		{"bad byte order", func(c *Config) { c.ByteOrder = "little" }, nil},
		{"negative workers", func(c *Config) { c.Workers = -2 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.Frames = 10
	cfg.Converter = ConverterNative
	cfg.CleanArtifacts = true

	oc := cfg.ToOrchestratorConfig()
	if oc.Count != 10 || !oc.Convert || !oc.CleanArtifacts {
		t.Errorf("unexpected orchestrator config %+v", oc)
	}
	if oc.Resolution != nil {
		t.Error("expected resolution to come from the frames")
	}

	cfg.StrictResolution = true
	oc = cfg.ToOrchestratorConfig()
	if oc.Resolution == nil || *oc.Resolution != (container.Resolution{Width: 128, Height: 160}) {
		t.Errorf("expected strict 128x160, got %v", oc.Resolution)
	}
}

func TestToOrchestratorConfig_ZeroFrames(t *testing.T) {
	cfg := Defaults()

	oc := cfg.ToOrchestratorConfig()
	if oc.Resolution == nil {
		t.Fatal("expected configured resolution for an empty build")
	}
	if oc.Convert {
		t.Error("expected no conversion by default")
	}
}
