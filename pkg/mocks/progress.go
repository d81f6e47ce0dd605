package mocks

import (
	"sync"

	"github.com/user/vidbin/pkg/ports"
)

// Progress records progress reports.
type Progress struct {
	mu sync.Mutex

	Total       int
	Description string
	Done        int
	Finished    bool
}

func (m *Progress) Start(total int, description string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Total = total
	m.Description = description
}

func (m *Progress) Advance(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Done += n
}

func (m *Progress) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Finished = true
}

var _ ports.Progress = (*Progress)(nil)
