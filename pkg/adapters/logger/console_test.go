package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/vidbin/pkg/ports"
)

func TestConsoleLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(ports.LevelWarn, &buf)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error to be logged, got %q", out)
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(ports.LevelDebug, &buf).WithComponent("extract")

	log.Debug("Parsed frame %d (%d bytes)", 3, 40960)

	if got := strings.TrimSpace(buf.String()); got != "[extract] Parsed frame 3 (40960 bytes)" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestConsoleLogger_QuietLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &buf)

	log.Error("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want ports.LogLevel
	}{
		{"debug", ports.LevelDebug},
		{"warn", ports.LevelWarn},
		{"quiet", ports.LevelQuiet},
		{"bogus", ports.LevelInfo},
	}
	for _, tt := range tests {
		if got := ports.ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
