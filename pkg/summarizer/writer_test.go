package summarizer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/user/vidbin/pkg/mocks"
)

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	formatter := FormatFunc(func(s *Summary) string { return "summary" })
	w := NewWriter(formatter, fs)

	path := filepath.Join("reports", "build.md")
	if err := w.Write(path, NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile(path)
	if !ok || string(data) != "summary" {
		t.Errorf("expected summary to be written, got %q", data)
	}
	if exists, _ := fs.Exists("reports"); !exists {
		t.Error("expected parent directory to be created")
	}
}

func TestWriter_Write_Error(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("disk full")
	}
	w := NewWriter(NewMarkdownFormatter(), fs)

	if err := w.Write("build.md", NewSummary()); err == nil {
		t.Error("expected error")
	}
}
