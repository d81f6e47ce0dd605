package mocks

import (
	"image"
	"sync"

	"github.com/user/vidbin/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	ManifestJSON  []byte
	FramePreviews map[int]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:       enabled,
		FramePreviews: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveManifestJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ManifestJSON = data
	return nil
}

func (m *DebugSink) SaveFramePreview(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FramePreviews[index] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
