package execconv

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/user/vidbin/pkg/adapters/logger"
	"github.com/user/vidbin/pkg/artifact"
	"github.com/user/vidbin/pkg/ports"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(Config{}, logger.NewNoop()); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}
	_, err := New(Config{Command: []string{"vidbin-no-such-converter"}}, logger.NewNoop())
	if !errors.Is(err, ErrCommandNotFound) {
		t.Errorf("expected ErrCommandNotFound, got %v", err)
	}
}

func TestProducer_Args(t *testing.T) {
	requireShell(t)
	p, err := New(Config{
		Command:   []string{"sh", "--cf", "RGB565_SWAPPED", "-o", "{outdir}", "{input}", "frame_{index}"},
		SourceDir: "frames",
	}, logger.NewNoop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := p.Args(7, "out")
	want := []string{"--cf", "RGB565_SWAPPED", "-o", "out", filepath.Join("frames", "7.png"), "frame_7"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestProducer_Produce(t *testing.T) {
	requireShell(t)
	outDir := t.TempDir()

	p, err := New(Config{
		Command: []string{"sh", "-c",
			`printf '.w = 1, .h = 1; uint8_t frame_{index}_map[] = {0x12, 0x34};' > "{outdir}/{index}.c"`},
		SourceDir: "frames",
	}, logger.NewNoop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path, err := p.Produce(context.Background(), 4, outDir)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if want := filepath.Join(outDir, "4.c"); path != want {
		t.Errorf("expected %q, got %q", want, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if _, payload, err := artifact.Parse(content); err != nil || len(payload) != 2 {
		t.Errorf("expected parsable artifact, got %v (%d bytes)", err, len(payload))
	}
}

func TestProducer_Produce_ExitError(t *testing.T) {
	requireShell(t)

	p, err := New(Config{
		Command: []string{"sh", "-c", "echo 'cannot open {input}' >&2; exit 3"},
	}, logger.NewNoop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = p.Produce(context.Background(), 2, t.TempDir())
	if !errors.Is(err, ports.ErrConvertFailed) {
		t.Fatalf("expected ErrConvertFailed, got %v", err)
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T", err)
	}
	if exitErr.Frame != 2 || exitErr.ExitCode != 3 {
		t.Errorf("expected frame 2 exit 3, got frame %d exit %d", exitErr.Frame, exitErr.ExitCode)
	}
	if !strings.Contains(exitErr.Stderr, "cannot open 2.png") {
		t.Errorf("expected stderr to be captured, got %q", exitErr.Stderr)
	}
}

func TestProducer_Produce_NoArtifact(t *testing.T) {
	requireShell(t)

	p, err := New(Config{Command: []string{"sh", "-c", "true"}}, logger.NewNoop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = p.Produce(context.Background(), 1, t.TempDir())
	if !errors.Is(err, ErrNoArtifact) || !errors.Is(err, ports.ErrConvertFailed) {
		t.Errorf("expected ErrNoArtifact, got %v", err)
	}
}

func TestProducer_Produce_ContextCancelled(t *testing.T) {
	requireShell(t)

	p, err := New(Config{Command: []string{"sh", "-c", "sleep 5"}}, logger.NewNoop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Produce(ctx, 1, t.TempDir()); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestTail(t *testing.T) {
	if got := tail("  short \n", 10); got != "short" {
		t.Errorf("expected trimmed output, got %q", got)
	}
	if got := tail("abcdefgh", 3); got != "...fgh" {
		t.Errorf("expected tail, got %q", got)
	}
}

func TestProducer_Produce_ArtifactExt(t *testing.T) {
	requireShell(t)
	outDir := t.TempDir()

	p, err := New(Config{
		Command:     []string{"sh", "-c", `printf '.w = 1, .h = 1; uint8_t m[] = {1, 2};' > "{output}"`},
		ArtifactExt: ".h",
	}, logger.NewNoop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	path, err := p.Produce(context.Background(), 2, outDir)
	if err != nil {
		t.Fatalf("Produce failed: %v", err)
	}
	if want := filepath.Join(outDir, "2.h"); path != want {
		t.Errorf("expected %q, got %q", want, path)
	}
}
