package mocks

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/user/vidbin/pkg/ports"
)

// ArtifactProducer is a mock implementation of ports.ArtifactProducer.
// By default it reports "<outDir>/<index>.c" without writing anything.
type ArtifactProducer struct {
	mu sync.Mutex

	ProduceFunc func(ctx context.Context, index int, outDir string) (string, error)

	// Recorded calls for verification
	Calls []int
}

func (m *ArtifactProducer) Produce(ctx context.Context, index int, outDir string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, index)
	m.mu.Unlock()
	if m.ProduceFunc != nil {
		return m.ProduceFunc(ctx, index, outDir)
	}
	return filepath.Join(outDir, fmt.Sprintf("%d.c", index)), nil
}

// SortedCalls returns the recorded frame indexes in ascending order.
func (m *ArtifactProducer) SortedCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := append([]int(nil), m.Calls...)
	sort.Ints(calls)
	return calls
}

var _ ports.ArtifactProducer = (*ArtifactProducer)(nil)
