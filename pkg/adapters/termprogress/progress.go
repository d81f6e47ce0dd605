// Package termprogress renders stage progress as a terminal progress bar.
package termprogress

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/user/vidbin/pkg/ports"
)

// Bar implements ports.Progress with a schollz/progressbar bar.
type Bar struct {
	mu  sync.Mutex
	out io.Writer
	bar *progressbar.ProgressBar
}

// New creates a Bar writing to out.
func New(out io.Writer) *Bar {
	return &Bar{out: out}
}

// NewAuto returns a Bar on stderr when it is a terminal, or a no-op otherwise.
func NewAuto() ports.Progress {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return New(os.Stderr)
	}
	return Noop{}
}

// Start begins a new bar with total steps.
func (b *Bar) Start(total int, description string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// Advance marks n more steps as done.
func (b *Bar) Advance(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bar != nil {
		_ = b.bar.Add(n)
	}
}

// Finish completes the bar and moves to a new line.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
	_, _ = io.WriteString(b.out, "\n")
	b.bar = nil
}

// Noop discards progress.
type Noop struct{}

func (Noop) Start(total int, description string) {}
func (Noop) Advance(n int)                       {}
func (Noop) Finish()                             {}

var (
	_ ports.Progress = (*Bar)(nil)
	_ ports.Progress = Noop{}
)
